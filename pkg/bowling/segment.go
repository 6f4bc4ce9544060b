package bowling

import "github.com/bft-labs/tenpin/internal/domain"

// Segment splits a roll sequence into frames.
//
// The cursor advances one roll past a Strike and two rolls past a Spare or
// Open frame. When exactly three rolls remain and they form a Strike or Spare,
// that frame is the last one: the trailing rolls are its bonus and are not
// segmented again. An empty sequence yields no frames and no error.
//
// On failure the returned frames are nil and the error is a
// *MalformedGameError.
func Segment[T Pins](rolls []T) ([]Frame[T], error) {
	if pos, ok := CheckRange(rolls); !ok {
		return nil, domain.Malformed(rolls, pos, "pin count out of range")
	}

	frames := make([]Frame[T], 0, (len(rolls)+1)/2)
	pos := 0
	for pos < len(rolls) {
		frame, err := classify(rolls, pos)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)

		remaining := len(rolls) - pos
		switch {
		case frame.Kind != domain.KindOpen && remaining == 3:
			// the remaining rolls were this frame's bonus
			pos = len(rolls)
		case frame.Kind == domain.KindStrike:
			pos++
		default:
			pos += 2
		}
	}
	return frames, nil
}

// classify returns the frame starting at rolls[pos].
// Precedence is Strike, then Spare, then Open.
func classify[T Pins](rolls []T, pos int) (Frame[T], error) {
	w := rolls[pos:]
	switch {
	case w[0] == domain.MaxPins:
		if len(w) < 3 {
			return Frame[T]{}, domain.Malformed(rolls, pos, "strike needs two bonus rolls")
		}
		if w[1] < domain.MaxPins && w[1]+w[2] > domain.MaxPins {
			return Frame[T]{}, domain.Malformed(rolls, pos, "strike bonus rolls exceed ten pins")
		}
		return domain.Strike(w[1], w[2]), nil
	case len(w) < 2:
		return Frame[T]{}, domain.Malformed(rolls, pos, "frame needs two rolls")
	case w[0]+w[1] == domain.MaxPins:
		if len(w) < 3 {
			return Frame[T]{}, domain.Malformed(rolls, pos, "spare needs a bonus roll")
		}
		return domain.Spare(w[2]), nil
	case w[0]+w[1] < domain.MaxPins:
		return domain.Open(w[0], w[1]), nil
	default:
		return Frame[T]{}, domain.Malformed(rolls, pos, "frame exceeds ten pins")
	}
}

// CheckRange reports whether every roll lies in [0, 10]. If not, it returns
// the index of the first offending roll.
func CheckRange[T Pins](rolls []T) (int, bool) {
	for i, r := range rolls {
		if r < 0 || r > domain.MaxPins {
			return i, false
		}
	}
	return 0, true
}
