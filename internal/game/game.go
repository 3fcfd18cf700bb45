// Package game composes the engine components: it pairs generated
// puzzles with their solution reference under a transaction ID and
// grades attempts against that pair.
package game

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"svw.info/sudoku-engine/internal/domain"
)

// Game couples a carved puzzle with the solution it was graded
// against. The solution comes from re-solving a copy of the carved
// puzzle, so the puzzle's givens always agree with it.
type Game struct {
	ID         uuid.UUID         `json:"id"`
	Difficulty domain.Difficulty `json:"difficulty"`
	EmptyCells int               `json:"emptyCells"`
	Puzzle     domain.Grid       `json:"puzzle"`
	Solution   domain.Grid       `json:"solution"`
	CreatedAt  time.Time         `json:"createdAt"`
}
