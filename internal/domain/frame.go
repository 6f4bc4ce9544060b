package domain

import "fmt"

// MaxPins is the number of pins standing at the start of a frame.
const MaxPins = 10

// Pins is the set of integer types a roll may be expressed in.
// Per-frame points never exceed 30, so every member can hold them;
// game totals are accumulated as int.
type Pins interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Kind identifies the shape of a Frame.
type Kind uint8

// Frame shapes.
const (
	// KindOpen is two rolls knocking down fewer than ten pins.
	KindOpen Kind = iota

	// KindSpare is two rolls knocking down all ten pins.
	KindSpare

	// KindStrike is a single roll knocking down all ten pins.
	KindStrike
)

// String returns the frame shape name.
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "Open"
	case KindSpare:
		return "Spare"
	case KindStrike:
		return "Strike"
	default:
		return "Unknown"
	}
}

// Frame is a single scoring unit. Which fields are meaningful depends on Kind:
//
//	Open:   Rolls holds both rolls of the frame.
//	Spare:  Bonus[0] holds the roll following the spare.
//	Strike: Bonus holds the two rolls following the strike.
//
// Bonus values are copies of rolls that also belong to the next frame.
type Frame[T Pins] struct {
	Kind  Kind
	Rolls [2]T
	Bonus [2]T
}

// Open returns an open frame of two rolls.
func Open[T Pins](first, second T) Frame[T] {
	return Frame[T]{Kind: KindOpen, Rolls: [2]T{first, second}}
}

// Spare returns a spare frame carrying its bonus roll.
func Spare[T Pins](bonus T) Frame[T] {
	return Frame[T]{Kind: KindSpare, Bonus: [2]T{bonus, 0}}
}

// Strike returns a strike frame carrying its two bonus rolls.
func Strike[T Pins](bonus1, bonus2 T) Frame[T] {
	return Frame[T]{Kind: KindStrike, Bonus: [2]T{bonus1, bonus2}}
}

// Points returns the frame's value including bonus.
func (f Frame[T]) Points() T {
	switch f.Kind {
	case KindStrike:
		return MaxPins + f.Bonus[0] + f.Bonus[1]
	case KindSpare:
		return MaxPins + f.Bonus[0]
	default:
		return f.Rolls[0] + f.Rolls[1]
	}
}

func (f Frame[T]) String() string {
	switch f.Kind {
	case KindStrike:
		return fmt.Sprintf("Strike(%d, %d)", f.Bonus[0], f.Bonus[1])
	case KindSpare:
		return fmt.Sprintf("Spare(%d)", f.Bonus[0])
	case KindOpen:
		return fmt.Sprintf("Open(%d, %d)", f.Rolls[0], f.Rolls[1])
	default:
		return fmt.Sprintf("%s(%d, %d)", f.Kind, f.Rolls[0], f.Rolls[1])
	}
}
