package bowling

import "github.com/bft-labs/tenpin/internal/domain"

// Flatten turns frames back into the roll sequence they were segmented from.
//
// Open frames contribute both rolls and Strike frames contribute a single 10;
// a final Strike also contributes its two bonus rolls. A Spare does not carry
// its own two rolls, so any Spare makes the result undefined and Flatten
// returns false.
func Flatten[T Pins](frames []Frame[T]) ([]T, bool) {
	rolls := make([]T, 0, 2*len(frames)+2)
	for i, f := range frames {
		switch f.Kind {
		case domain.KindOpen:
			rolls = append(rolls, f.Rolls[0], f.Rolls[1])
		case domain.KindStrike:
			rolls = append(rolls, domain.MaxPins)
			if i == len(frames)-1 {
				rolls = append(rolls, f.Bonus[0], f.Bonus[1])
			}
		default:
			return nil, false
		}
	}
	return rolls, true
}
