package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Difficulty selects how many cells get carved out of a generated
// puzzle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	ExtraHard
)

// ErrUnknownDifficulty reports an unrecognized difficulty label.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// String returns the wire label for d.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case ExtraHard:
		return "ex-hard"
	default:
		return "medium"
	}
}

// Range returns the inclusive empty-cell bounds for d.
func (d Difficulty) Range() (min, max int) {
	switch d {
	case Easy:
		return 25, 35
	case Medium:
		return 35, 45
	case Hard:
		return 45, 55
	default:
		return 55, 60 // ExtraHard
	}
}

// Draw picks an empty-cell count uniformly from the inclusive range
// for d. The draw is caller-side policy; the generator itself takes an
// explicit count.
func (d Difficulty) Draw(rng *rand.Rand) int {
	lo, hi := d.Range()
	return lo + rng.Intn(hi-lo+1)
}

// ParseDifficulty maps a label to its Difficulty. "expert" is accepted
// as an alias for "ex-hard". Unknown labels return Medium along with
// ErrUnknownDifficulty so callers can warn and keep the fallback.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "ex-hard", "expert":
		return ExtraHard, nil
	}
	return Medium, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// MarshalText renders the wire label, so JSON carries "easy" instead
// of an enum ordinal.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a wire label.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
