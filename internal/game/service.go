package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

var errNotConfigured = errors.New("game dependency not configured")

// ErrUnsolvable reports a grid with no solution. For Solve callers
// this is the normal terminal outcome of an unsatisfiable input, not
// an internal failure.
var ErrUnsolvable = errors.New("grid is unsolvable")

// Service wires the engine components behind one façade.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Checker   ports.Checker

	rng    *rand.Rand
	logger *zap.Logger
}

// NewService wires a service. A nil rng gets a time-seeded source, a
// nil logger is replaced by a no-op logger.
func NewService(s ports.Solver, g ports.Generator, v ports.Validator, c ports.Checker, rng *rand.Rand, logger *zap.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Solver: s, Generator: g, Validator: v, Checker: c, rng: rng, logger: logger}
}

// NewGame draws an empty-cell count for the difficulty, generates a
// puzzle, and re-solves a copy of it for the solution reference.
func (s *Service) NewGame(d domain.Difficulty) (*Game, error) {
	if s.Generator == nil || s.Solver == nil {
		return nil, errNotConfigured
	}
	return s.newGame(d, d.Draw(s.rng))
}

// NewGameWithEmptyCells is NewGame with an explicit hole count in
// place of the difficulty draw.
func (s *Service) NewGameWithEmptyCells(d domain.Difficulty, emptyCells int) (*Game, error) {
	if s.Generator == nil || s.Solver == nil {
		return nil, errNotConfigured
	}
	return s.newGame(d, emptyCells)
}

func (s *Service) newGame(d domain.Difficulty, emptyCells int) (*Game, error) {
	start := time.Now()

	puzzle, err := s.Generator.Generate(emptyCells)
	if err != nil {
		return nil, err
	}
	solution := puzzle.Clone()
	if !s.Solver.Solve(&solution) {
		return nil, ErrUnsolvable
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	g := &Game{
		ID:         id,
		Difficulty: d,
		EmptyCells: emptyCells,
		Puzzle:     puzzle,
		Solution:   solution,
		CreatedAt:  time.Now(),
	}
	s.logger.Info("game created",
		zap.String("game_id", id.String()),
		zap.Stringer("difficulty", d),
		zap.Int("empty_cells", emptyCells),
		zap.Duration("duration", time.Since(start)),
	)
	return g, nil
}

// Check grades input against the game's puzzle/solution pair.
func (s *Service) Check(g *Game, input *domain.Grid) (domain.Report, error) {
	if s.Checker == nil {
		return domain.Report{}, errNotConfigured
	}
	rep, err := s.Checker.Evaluate(&g.Puzzle, &g.Solution, input)
	if err != nil {
		return domain.Report{}, err
	}
	s.logger.Info("attempt checked",
		zap.String("game_id", g.ID.String()),
		zap.Bool("solved", rep.Solved),
		zap.Bool("alternative", rep.Alternative),
		zap.Int("correct", rep.Stats.Correct),
		zap.Int("wrong", rep.Stats.Wrong),
		zap.Int("empty", rep.Stats.Empty),
	)
	return rep, nil
}

// Solve fills g in place, mapping an unsatisfiable grid to
// ErrUnsolvable.
func (s *Service) Solve(g *domain.Grid) error {
	if s.Solver == nil {
		return errNotConfigured
	}
	start := time.Now()
	if !s.Solver.Solve(g) {
		return ErrUnsolvable
	}
	s.logger.Debug("grid solved", zap.Duration("duration", time.Since(start)))
	return nil
}

// Solutions counts solutions up to limit without mutating g.
func (s *Service) Solutions(g *domain.Grid, limit int) (int, error) {
	if s.Solver == nil {
		return 0, errNotConfigured
	}
	return s.Solver.Solutions(g, limit), nil
}

// Validate reports whether g is a valid complete grid along with any
// conflicting cells found by the partial-grid scan.
func (s *Service) Validate(g *domain.Grid) (bool, []domain.CellCoord, error) {
	if s.Validator == nil {
		return false, nil, errNotConfigured
	}
	return s.Validator.Complete(g), s.Validator.Conflicts(g), nil
}
