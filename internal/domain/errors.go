package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the tenpin domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrMalformedGame is returned when a roll sequence cannot be segmented
	// into legal frames.
	ErrMalformedGame = errors.New("tenpin: malformed game")

	// ErrStrategyMismatch is returned when the recursive cross-check
	// disagrees with the canonical segmenter.
	ErrStrategyMismatch = errors.New("tenpin: strategy mismatch")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("tenpin: invalid configuration")

	// ErrEmptySheet is returned when a score sheet lists no games.
	ErrEmptySheet = errors.New("tenpin: score sheet has no games")
)

// MalformedGameError describes where segmentation stopped.
// It matches ErrMalformedGame under errors.Is.
type MalformedGameError struct {
	// Position is the index of the first roll of the offending window
	Position int

	// Window holds up to three rolls starting at Position
	Window []int64

	// Reason is a short human readable cause
	Reason string
}

// Malformed builds a MalformedGameError for the window starting at pos.
func Malformed[T Pins](rolls []T, pos int, reason string) *MalformedGameError {
	end := min(pos+3, len(rolls))
	window := make([]int64, 0, end-pos)
	for _, r := range rolls[pos:end] {
		window = append(window, int64(r))
	}
	return &MalformedGameError{Position: pos, Window: window, Reason: reason}
}

func (e *MalformedGameError) Error() string {
	return fmt.Sprintf("%v at roll %d %v: %s", ErrMalformedGame, e.Position, e.Window, e.Reason)
}

// Is reports whether target is ErrMalformedGame.
func (e *MalformedGameError) Is(target error) bool {
	return target == ErrMalformedGame
}
