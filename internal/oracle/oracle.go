// Package oracle holds a recursive frame segmenter used to cross-check the
// canonical one in pkg/bowling. It is not part of the public API.
package oracle

import "github.com/bft-labs/tenpin/internal/domain"

// Segment splits rolls into frames by peeling the head frame off and
// recursing on the tail. It applies the same validation as bowling.Segment.
func Segment[T domain.Pins](rolls []T) ([]domain.Frame[T], error) {
	for i, r := range rolls {
		if r < 0 || r > domain.MaxPins {
			return nil, domain.Malformed(rolls, i, "pin count out of range")
		}
	}
	frames, err := segment(rolls, 0)
	if err != nil {
		return nil, err
	}
	if frames == nil {
		frames = []domain.Frame[T]{}
	}
	return frames, nil
}

func segment[T domain.Pins](rolls []T, pos int) ([]domain.Frame[T], error) {
	rest := rolls[pos:]
	const ten = domain.MaxPins

	switch {
	case len(rest) == 0:
		return nil, nil

	// strike closing the game
	case len(rest) == 3 && rest[0] == ten:
		if err := checkStrikeBonus(rolls, pos); err != nil {
			return nil, err
		}
		return []domain.Frame[T]{domain.Strike(rest[1], rest[2])}, nil

	case rest[0] == ten:
		if len(rest) < 3 {
			return nil, domain.Malformed(rolls, pos, "strike needs two bonus rolls")
		}
		if err := checkStrikeBonus(rolls, pos); err != nil {
			return nil, err
		}
		return prepend(domain.Strike(rest[1], rest[2]), rolls, pos+1)

	case len(rest) < 2:
		return nil, domain.Malformed(rolls, pos, "frame needs two rolls")

	// spare closing the game
	case len(rest) == 3 && rest[0]+rest[1] == ten:
		return []domain.Frame[T]{domain.Spare(rest[2])}, nil

	case rest[0]+rest[1] == ten:
		if len(rest) < 3 {
			return nil, domain.Malformed(rolls, pos, "spare needs a bonus roll")
		}
		return prepend(domain.Spare(rest[2]), rolls, pos+2)

	case rest[0] < ten && rest[0]+rest[1] < ten:
		return prepend(domain.Open(rest[0], rest[1]), rolls, pos+2)

	default:
		return nil, domain.Malformed(rolls, pos, "frame exceeds ten pins")
	}
}

func prepend[T domain.Pins](head domain.Frame[T], rolls []T, next int) ([]domain.Frame[T], error) {
	tail, err := segment(rolls, next)
	if err != nil {
		return nil, err
	}
	return append([]domain.Frame[T]{head}, tail...), nil
}

func checkStrikeBonus[T domain.Pins](rolls []T, pos int) error {
	b1, b2 := rolls[pos+1], rolls[pos+2]
	if b1 < domain.MaxPins && b1+b2 > domain.MaxPins {
		return domain.Malformed(rolls, pos, "strike bonus rolls exceed ten pins")
	}
	return nil
}
