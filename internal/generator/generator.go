// Package generator builds puzzles by seeding a blank grid, completing
// it with the solver, and carving cells back out.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/rules"
)

const (
	seedAttempts    = 11
	seedRetryBudget = 100
)

// Errors reported by Generate.
var (
	ErrEmptyCellCount    = errors.New("empty cell count must be between 0 and 81")
	ErrSeedContradiction = errors.New("seeded grid has no solution")
)

// Generator creates puzzles using a provided Solver and an injectable
// random source, so a fixed seed reproduces the same puzzle.
type Generator struct {
	Solver ports.Solver
	rng    *rand.Rand
}

// New wires a generator around the given solver. A nil rng gets a
// time-seeded source.
func New(s ports.Solver, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{Solver: s, rng: rng}
}

// Generate builds a puzzle with exactly emptyCells empty cells.
//
// The grid starts blank and receives 11 seeding attempts. Each attempt
// draws a uniform row, column, and digit 1-9, re-drawing all three up
// to 100 times until the placement passes the constraint check and the
// target cell is still empty; an attempt that exhausts its re-draws is
// skipped, leaving the grid with fewer seeds. The seeded grid is then
// completed by the solver and emptyCells cells are carved back out at
// uniformly shuffled positions.
func (g *Generator) Generate(emptyCells int) (domain.Grid, error) {
	if emptyCells < 0 || emptyCells > 81 {
		return domain.Grid{}, fmt.Errorf("%w: got %d", ErrEmptyCellCount, emptyCells)
	}

	var grid domain.Grid
	for i := 0; i < seedAttempts; i++ {
		row, col := g.rng.Intn(9), g.rng.Intn(9)
		num := uint8(1 + g.rng.Intn(9))
		attempts := 0
		for (!rules.Allowed(&grid, row, col, num) || grid[row][col] != 0) && attempts < seedRetryBudget {
			row, col = g.rng.Intn(9), g.rng.Intn(9)
			num = uint8(1 + g.rng.Intn(9))
			attempts++
		}
		if attempts < seedRetryBudget {
			grid[row][col] = num
		}
	}

	// Seeds were placed under the constraint check, so the solver is
	// expected to succeed. If it ever cannot, fail rather than hand
	// back a partial grid.
	if !g.Solver.Solve(&grid) {
		return domain.Grid{}, ErrSeedContradiction
	}

	positions := make([]int, 81)
	for i := 0; i < 81; i++ {
		positions[i] = i
	}
	g.rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })
	for _, pos := range positions[:emptyCells] {
		grid[pos/9][pos%9] = 0
	}
	return grid, nil
}
