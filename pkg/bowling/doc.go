// Package bowling segments ten-pin roll sequences into frames and scores them.
//
// The pipeline has two stages. [Segment] walks the rolls with a cursor and a
// lookahead window of up to three rolls, emitting one [Frame] per step. Each
// Strike or Spare frame carries copies of its bonus rolls, so [Score] can
// value every frame on its own without looking at its neighbours.
//
// # Usage
//
//	frames, err := bowling.Segment([]uint8{10, 9, 1, 3, 4})
//	if err != nil {
//	    // errors.Is(err, bowling.ErrMalformedGame)
//	}
//	scores := bowling.Score(frames) // [20 13 7]
//	total := bowling.Total(scores)  // 40, always an int
//
// Rolls may use any integer type, including uint8. Per-frame scores stay in
// the roll type (at most 30); totals and running totals are ints.
//
// Or in one call:
//
//	card, err := bowling.Play(rolls)
//
// # Validation
//
// Segmentation is strict and fails fast. Every roll must be within [0, 10],
// every non-strike frame must knock down at most ten pins, and a Strike or
// Spare must have its bonus rolls available. On failure no frames are
// returned and the error is a [*MalformedGameError].
//
// # Version
//
// Current version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package bowling
