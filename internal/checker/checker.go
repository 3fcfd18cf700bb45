// Package checker grades a user attempt cell by cell against a stored
// puzzle/solution pair.
package checker

import (
	"errors"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// ErrInvalidSolution reports a stored solution that cannot be graded
// against because it is not a fully filled grid of digits.
var ErrInvalidSolution = errors.New("solution grid must be fully filled with digits 1-9")

// Evaluator produces grading reports. The validator is consulted to
// recognize alternative solutions.
type Evaluator struct {
	Validator ports.Validator
}

func New(v ports.Validator) *Evaluator { return &Evaluator{Validator: v} }

// Evaluate grades input against the puzzle/solution pair.
//
// Cells prefilled in the puzzle grade as StatusGiven and keep the
// puzzle's value no matter what input holds there. Editable cells
// grade StatusCorrect or StatusWrong against the solution, or
// StatusMissing when left empty; rows, columns, and boxes holding
// wrong or missing cells land in the report's error sets.
//
// A complete attempt that disagrees with the stored solution somewhere
// yet still forms a valid grid is a legitimate alternative solution:
// its wrong cells are regraded as correct, the error sets clear, and
// the report carries the Alternative flag.
func (e *Evaluator) Evaluate(puzzle, solution, input *domain.Grid) (domain.Report, error) {
	var rep domain.Report

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if solution[r][c] < 1 || solution[r][c] > 9 {
				return rep, fmt.Errorf("%w: row %d col %d", ErrInvalidSolution, r, c)
			}
			if puzzle[r][c] == 0 && input[r][c] > 9 {
				return rep, fmt.Errorf("%w: %d at row %d col %d", domain.ErrValueOutOfRange, input[r][c], r, c)
			}
		}
	}

	var errRows, errCols, errBoxes [9]bool
	complete := true

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			box := domain.BoxIndex(r, c)
			if puzzle[r][c] != 0 {
				rep.Input[r][c] = puzzle[r][c]
				rep.Statuses[r][c] = domain.StatusGiven
				rep.Stats.Prefilled++
				continue
			}
			switch v := input[r][c]; {
			case v == 0:
				rep.Statuses[r][c] = domain.StatusMissing
				rep.Stats.Empty++
				complete = false
				errRows[r], errCols[c], errBoxes[box] = true, true, true
			case v == solution[r][c]:
				rep.Input[r][c] = v
				rep.Statuses[r][c] = domain.StatusCorrect
				rep.Stats.Correct++
			default:
				rep.Input[r][c] = v
				rep.Statuses[r][c] = domain.StatusWrong
				rep.Stats.Wrong++
				errRows[r], errCols[c], errBoxes[box] = true, true, true
			}
		}
	}

	rep.Complete = complete
	rep.Solved = complete && rep.Stats.Wrong == 0

	if complete && rep.Stats.Wrong > 0 && e.Validator.Complete(&rep.Input) {
		rep.Alternative = true
		rep.Solved = true
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if rep.Statuses[r][c] == domain.StatusWrong {
					rep.Statuses[r][c] = domain.StatusCorrect
				}
			}
		}
		rep.Stats.Correct += rep.Stats.Wrong
		rep.Stats.Wrong = 0
		errRows, errCols, errBoxes = [9]bool{}, [9]bool{}, [9]bool{}
	}

	for i := 0; i < 9; i++ {
		if errRows[i] {
			rep.ErrorRows = append(rep.ErrorRows, i)
		}
		if errCols[i] {
			rep.ErrorCols = append(rep.ErrorCols, i)
		}
		if errBoxes[i] {
			rep.ErrorBoxes = append(rep.ErrorBoxes, i)
		}
	}
	return rep, nil
}
