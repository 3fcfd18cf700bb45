// Package validator checks assembled grids: full-grid validity for
// completed attempts and conflict location for partial grids.
package validator

import "svw.info/sudoku-engine/internal/domain"

// GridValidator performs bitmask row/col/box scans.
type GridValidator struct{}

func New() *GridValidator { return &GridValidator{} }

// Complete reports whether g is a fully and correctly solved grid:
// every cell holds 1-9 and each of the 9 rows, 9 columns, and 9 boxes
// contains every digit exactly once. An empty or out-of-range cell
// fails the structural pass before any uniqueness scan runs.
func (v *GridValidator) Complete(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] < 1 || g[r][c] > 9 {
				return false
			}
		}
	}
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			bit := 1 << g[r][c]
			if m&bit != 0 {
				return false
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			bit := 1 << g[r][c]
			if m&bit != 0 {
				return false
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					bit := 1 << g[br+dr][bc+dc]
					if m&bit != 0 {
						return false
					}
					m |= bit
				}
			}
		}
	}
	return true
}

// Conflicts scans a partial grid and returns the cells whose value
// repeats an earlier one in the same row, column, or box. Empty cells
// are skipped, so a grid under construction with no duplicates comes
// back clean. The grid is never mutated.
func (v *GridValidator) Conflicts(g *domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					val := g[br+dr][bc+dc]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: br + dr, Col: bc + dc})
					}
					m |= bit
				}
			}
		}
	}
	return conf
}
