package bowling

import "github.com/bft-labs/tenpin/internal/domain"

// Re-export domain types so callers only need this package.
type (
	// Pins is the numeric constraint satisfied by every roll type.
	Pins = domain.Pins

	// Kind identifies the shape of a frame.
	Kind = domain.Kind

	// MalformedGameError reports where segmentation stopped.
	MalformedGameError = domain.MalformedGameError
)

// Frame is a single scoring unit carrying copies of its bonus rolls.
type Frame[T Pins] = domain.Frame[T]

// Card is the frames, scores and total of one game.
type Card[T Pins] = domain.Card[T]

// Frame shapes, see domain.Kind.
const (
	KindOpen   = domain.KindOpen
	KindSpare  = domain.KindSpare
	KindStrike = domain.KindStrike
)

// ErrMalformedGame is matched by every segmentation failure.
var ErrMalformedGame = domain.ErrMalformedGame
