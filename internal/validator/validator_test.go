package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

// Solution of the classic sample puzzle.
var solved = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestCompleteAcceptsSolvedGrid(t *testing.T) {
	v := New()
	g := solved
	require.True(t, v.Complete(&g))
	require.Equal(t, solved, g, "Complete must not mutate the grid")

	// A structurally different valid grid: rows are shifted copies of
	// 1-9, the classic band/stack pattern.
	var pattern domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			pattern[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	require.True(t, v.Complete(&pattern))
}

func TestCompleteRejections(t *testing.T) {
	v := New()
	cases := []struct {
		name   string
		mutate func(*domain.Grid)
	}{
		{"empty cell", func(g *domain.Grid) { g[4][4] = 0 }},
		{"value above nine", func(g *domain.Grid) { g[4][4] = 12 }},
		{"corner cell changed", func(g *domain.Grid) { g[0][0] = 3 }},
		{"center cell changed", func(g *domain.Grid) { g[4][4] = 9 }},
		{"swap across rows", func(g *domain.Grid) { g[0][0], g[1][0] = g[1][0], g[0][0] }},
		{"all ones", func(g *domain.Grid) {
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					g[r][c] = 1
				}
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := solved
			tc.mutate(&g)
			require.False(t, v.Complete(&g))
		})
	}

	var empty domain.Grid
	require.False(t, v.Complete(&empty))
}

func TestConflicts(t *testing.T) {
	v := New()

	t.Run("clean partial grid", func(t *testing.T) {
		g := domain.Grid{
			{5, 3, 0, 0, 7, 0, 0, 0, 0},
			{6, 0, 0, 1, 9, 5, 0, 0, 0},
			{0, 9, 8, 0, 0, 0, 0, 6, 0},
			{8, 0, 0, 0, 6, 0, 0, 0, 3},
			{4, 0, 0, 8, 0, 3, 0, 0, 1},
			{7, 0, 0, 0, 2, 0, 0, 0, 6},
			{0, 6, 0, 0, 0, 0, 2, 8, 0},
			{0, 0, 0, 4, 1, 9, 0, 0, 5},
			{0, 0, 0, 0, 8, 0, 0, 7, 9},
		}
		require.Empty(t, v.Conflicts(&g))
	})

	t.Run("empty grid", func(t *testing.T) {
		var g domain.Grid
		require.Empty(t, v.Conflicts(&g))
	})

	t.Run("row duplicate located", func(t *testing.T) {
		var g domain.Grid
		g[2][1] = 7
		g[2][6] = 7
		conf := v.Conflicts(&g)
		require.Contains(t, conf, domain.CellCoord{Row: 2, Col: 6})
	})

	t.Run("box duplicate located", func(t *testing.T) {
		var g domain.Grid
		g[0][0] = 4
		g[2][2] = 4
		conf := v.Conflicts(&g)
		require.Contains(t, conf, domain.CellCoord{Row: 2, Col: 2})
	})

	t.Run("repeated scans agree", func(t *testing.T) {
		g := solved
		g[5][5] = g[5][4]
		first := v.Conflicts(&g)
		second := v.Conflicts(&g)
		require.NotEmpty(t, first)
		require.Equal(t, first, second)
	})
}
