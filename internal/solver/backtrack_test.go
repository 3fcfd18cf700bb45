package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
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

// Its unique solution.
var sampleSolved = domain.Grid{
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

func TestSolveSampleUnder1s(t *testing.T) {
	g := sample
	s := New()

	start := time.Now()
	require.True(t, s.Solve(&g))
	dur := time.Since(start)

	require.Equal(t, sampleSolved, g, "deterministic search must land on the unique solution")
	require.True(t, validator.New().Complete(&g))
	require.Less(t, dur, time.Second, "classic sample took too long")
	t.Logf("solved in %v", dur)
}

func TestSolveKeepsGivens(t *testing.T) {
	g := sample
	require.True(t, New().Solve(&g))
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != 0 && g[r][c] != sample[r][c] {
				t.Fatalf("given at r=%d c=%d changed from %d to %d", r, c, sample[r][c], g[r][c])
			}
		}
	}
}

func TestSolveEmptyGrid(t *testing.T) {
	var g domain.Grid
	require.True(t, New().Solve(&g))
	require.True(t, validator.New().Complete(&g))
	// First row of the deterministic search over an empty grid.
	require.Equal(t, [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, g[0])
}

func TestSolveUnsolvable(t *testing.T) {
	t.Run("immediate dead end", func(t *testing.T) {
		// (0,0) needs a 1, but column 0 already has one.
		var g domain.Grid
		for c := 1; c < 9; c++ {
			g[0][c] = uint8(c + 1)
		}
		g[1][0] = 1
		in := g
		require.False(t, New().Solve(&g))
		require.Equal(t, in, g, "failed search must leave the grid as passed in")
	})

	t.Run("dead end after search", func(t *testing.T) {
		// A placeable but wrong digit in a uniquely solvable puzzle
		// forces the search to exhaust and unwind.
		g := sample
		g[0][2] = 1
		in := g
		require.False(t, New().Solve(&g))
		require.Equal(t, in, g, "failed search must leave the grid as passed in")
	})
}

func TestSolveFullGridReportsTrue(t *testing.T) {
	// No empty cell means nothing to search; even an invalid grid
	// reports true. Completed grids are judged by the validator.
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = 1
		}
	}
	require.True(t, New().Solve(&g))
}

func TestSolutions(t *testing.T) {
	s := New()

	t.Run("unique puzzle", func(t *testing.T) {
		g := sample
		require.Equal(t, 1, s.Solutions(&g, 3))
		require.Equal(t, sample, g, "counting must not mutate the grid")
	})

	t.Run("two solutions", func(t *testing.T) {
		// Carving a swappable rectangle out of a solved grid leaves
		// exactly two completions.
		g := sampleSolved
		for _, cell := range [][2]int{{3, 5}, {3, 8}, {4, 5}, {4, 8}} {
			g[cell[0]][cell[1]] = 0
		}
		require.Equal(t, 2, s.Solutions(&g, 3))
	})

	t.Run("limit caps the count", func(t *testing.T) {
		var g domain.Grid
		require.Equal(t, 2, s.Solutions(&g, 2))
	})

	t.Run("non-positive limit", func(t *testing.T) {
		g := sample
		require.Equal(t, 0, s.Solutions(&g, 0))
		require.Equal(t, 0, s.Solutions(&g, -1))
	})
}
