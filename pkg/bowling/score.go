package bowling

// Score returns the points of each frame in order.
//
// Open(a, b) scores a+b, Spare(bonus) scores 10+bonus and Strike(b1, b2)
// scores 10+b1+b2. The frames are assumed to come from Segment; hand-built
// frames that break those shapes (an Open pair above nine pins, a bonus above
// ten) are not detected and produce undefined totals.
func Score[T Pins](frames []Frame[T]) []T {
	scores := make([]T, len(frames))
	for i, f := range frames {
		scores[i] = f.Points()
	}
	return scores
}

// Total sums per-frame scores as an int, so 8-bit roll types do not wrap.
func Total[T Pins](scores []T) int {
	total := 0
	for _, s := range scores {
		total += int(s)
	}
	return total
}

// Play segments and scores rolls in one call.
func Play[T Pins](rolls []T) (Card[T], error) {
	frames, err := Segment(rolls)
	if err != nil {
		return Card[T]{}, err
	}
	scores := Score(frames)
	return Card[T]{
		Frames: frames,
		Scores: scores,
		Total:  Total(scores),
	}, nil
}
