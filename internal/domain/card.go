package domain

// Card is the scored result of one game.
// It maintains the invariant that Frames and Scores have the same length.
type Card[T Pins] struct {
	// Frames is the segmented frame sequence
	Frames []Frame[T]

	// Scores holds the points of each frame, in frame order
	Scores []T

	// Total is the sum of Scores. It is an int so that narrow roll types
	// cannot wrap: a game totals at most 300.
	Total int
}

// Running returns the cumulative score after each frame, as printed on a
// score sheet.
func (c Card[T]) Running() []int {
	out := make([]int, len(c.Scores))
	sum := 0
	for i, s := range c.Scores {
		sum += int(s)
		out[i] = sum
	}
	return out
}

// Size returns the number of frames on the card.
func (c Card[T]) Size() int {
	return len(c.Frames)
}

// Game is a named roll sequence as entered on the command line or a score sheet.
type Game struct {
	Name  string
	Rolls []int
}
