// Package solver fills grids in place by depth-first backtracking.
package solver

import (
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/rules"
)

// Backtracking is a straightforward recursive solver. The search is
// deterministic: empty cells are visited in row-major order and
// candidates tried in ascending order, so a grid with several
// solutions always yields the same one.
type Backtracking struct{}

func New() *Backtracking { return &Backtracking{} }

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Solve fills g in place and reports whether a solution was found.
// Filled cells are never written to. On failure every cell the search
// touched is 0 again, so g ends up exactly as passed in. A grid with
// no empty cell reports true without further inspection; judging a
// completed grid is the validator's job.
func (s *Backtracking) Solve(g *domain.Grid) bool {
	var dfs func() bool
	dfs = func() bool {
		r, c, ok := findEmpty(g)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			if rules.Allowed(g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	return dfs()
}

// Solutions counts the solutions reachable from g, stopping once limit
// is hit. It searches a copy, the caller's grid is left untouched.
func (s *Backtracking) Solutions(g *domain.Grid, limit int) int {
	if limit <= 0 {
		return 0
	}
	grid := *g
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			if rules.Allowed(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count
}
