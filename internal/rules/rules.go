// Package rules implements the single-placement constraint check for
// standard 9x9 Sudoku: whether a digit may occupy a cell without
// repeating in its row, column, or 3x3 box.
package rules

import (
	"errors"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
)

// Argument errors reported by Check.
var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidDigit    = errors.New("invalid digit")
)

// Allowed reports whether num can be placed at (row, col) without
// violating row, column, or box uniqueness. The cell's own value is
// not special-cased: if num already sits at (row, col) the placement
// is not allowed. Scans the full row, column, and box without
// deduplicating their overlap, so at most 27 cells are read. Arguments
// must be in range; Check is the validating entry point.
func Allowed(g *domain.Grid, row, col int, num uint8) bool {
	for i := 0; i < 9; i++ {
		if g[row][i] == num || g[i][col] == num {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == num {
				return false
			}
		}
	}
	return true
}

// Check validates its arguments, then reports Allowed.
func Check(g *domain.Grid, row, col int, num uint8) (bool, error) {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return false, fmt.Errorf("%w: row %d col %d must be in range [0, 9)", ErrInvalidPosition, row, col)
	}
	if num < 1 || num > 9 {
		return false, fmt.Errorf("%w: %d must be in range [1, 9]", ErrInvalidDigit, num)
	}
	return Allowed(g, row, col, num), nil
}
