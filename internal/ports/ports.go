// Package ports defines the engine interfaces the composition layer
// wires together.
package ports

import "svw.info/sudoku-engine/internal/domain"

// Solver fills grids in place and counts solutions.
type Solver interface {
	Solve(g *domain.Grid) bool
	Solutions(g *domain.Grid, limit int) int
}

// Generator creates puzzles with an exact number of empty cells.
type Generator interface {
	Generate(emptyCells int) (domain.Grid, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Complete(g *domain.Grid) bool
	Conflicts(g *domain.Grid) []domain.CellCoord
}

// Checker grades an attempt against a stored puzzle/solution pair.
type Checker interface {
	Evaluate(puzzle, solution, input *domain.Grid) (domain.Report, error)
}
