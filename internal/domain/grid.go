package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Grid is a 9x9 Sudoku grid in row-major order. Cell values are 0-9,
// where 0 marks an empty cell. The array representation makes the 9x9
// shape a property of the type, so dimension checks only happen at
// boundaries that accept dynamic input.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Construction errors for grids built from dynamic input.
var (
	ErrInvalidDimensions = errors.New("grid must have 9 rows of 9 columns")
	ErrValueOutOfRange   = errors.New("cell value must be between 0 and 9")
)

// FromRows builds a Grid from row-major dynamic input. It rejects wrong
// dimensions and out-of-range values before any rule logic runs.
func FromRows(rows [][]int) (Grid, error) {
	var g Grid
	if len(rows) != 9 {
		return g, fmt.Errorf("%w: got %d rows", ErrInvalidDimensions, len(rows))
	}
	for r, row := range rows {
		if len(row) != 9 {
			return g, fmt.Errorf("%w: row %d has %d columns", ErrInvalidDimensions, r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return g, fmt.Errorf("%w: %d at row %d col %d", ErrValueOutOfRange, v, r, c)
			}
			g[r][c] = uint8(v)
		}
	}
	return g, nil
}

// ParseLine decodes the 81-character single-line form. Digits 1-9 are
// cell values, '0' and '.' mark empty cells.
func ParseLine(s string) (Grid, error) {
	var g Grid
	s = strings.TrimSpace(s)
	if len(s) != 81 {
		return g, fmt.Errorf("%w: line form needs 81 characters, got %d", ErrInvalidDimensions, len(s))
	}
	for i := 0; i < 81; i++ {
		switch ch := s[i]; {
		case ch == '.' || ch == '0':
			// empty cell
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = ch - '0'
		default:
			return g, fmt.Errorf("%w: %q at offset %d", ErrValueOutOfRange, ch, i)
		}
	}
	return g, nil
}

// Line renders the grid in the 81-character single-line form with '.'
// for empty cells.
func (g Grid) Line() string {
	var b strings.Builder
	b.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
		}
	}
	return b.String()
}

// Clone returns an independent copy. Grids are value types, so plain
// assignment copies as well; Clone makes clone-then-solve call sites
// explicit.
func (g Grid) Clone() Grid { return g }

// EmptyCount returns the number of empty cells.
func (g Grid) EmptyCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// FilledCount returns the number of filled cells.
func (g Grid) FilledCount() int { return 81 - g.EmptyCount() }

// BoxIndex returns the 0-8 row-major index of the 3x3 box containing
// (row, col).
func BoxIndex(row, col int) int { return (row/3)*3 + col/3 }
