package tenpin_test

import (
	"errors"
	"fmt"

	"github.com/bft-labs/tenpin"
)

func ExampleTotal() {
	total, err := tenpin.Total(10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(total)

	_, err = tenpin.Total(10, 10)
	fmt.Println(errors.Is(err, tenpin.ErrMalformedGame))

	// Output:
	// 300
	// true
}

func ExamplePlay() {
	card, err := tenpin.Play(9, 1, 2, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(card.Frames, card.Scores, card.Running(), card.Total)

	// Output: [Spare(2) Open(2, 3)] [12 5] [12 17] 17
}
