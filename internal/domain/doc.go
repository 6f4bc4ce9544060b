// Package domain contains the core value types for tenpin.
//
// This package represents the innermost layer of the repository. It has no
// dependencies on infrastructure concerns (files, logging, CLI) and contains
// only the bowling vocabulary shared by the segmenters and the scorer.
//
// # Types
//
//   - [Frame]: one scoring unit (Open, Spare or Strike) carrying copies of its bonus rolls
//   - [Card]: the frames, per-frame scores and total of a single game
//   - [Pins]: the numeric constraint every roll type satisfies
//
// # Design Principles
//
// Domain values are:
//   - Immutable after construction
//   - Passed by value; bonus rolls are copied, never referenced
//   - Free of infrastructure dependencies
package domain
