// Package tenpin scores ten-pin bowling games.
//
// Example usage:
//
//	total, err := tenpin.Total(10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(total) // 300
//
// For frame-level results and other integer types use
// github.com/bft-labs/tenpin/pkg/bowling.
package tenpin

import (
	"github.com/bft-labs/tenpin/internal/domain"
	"github.com/bft-labs/tenpin/pkg/bowling"
)

// Card holds the frames, per-frame scores and total of one game.
type Card = domain.Card[int]

// ErrMalformedGame is matched by every segmentation failure.
var ErrMalformedGame = domain.ErrMalformedGame

// Play segments and scores rolls.
func Play(rolls ...int) (Card, error) {
	return bowling.Play(rolls)
}

// Total returns the final score of rolls.
func Total(rolls ...int) (int, error) {
	card, err := bowling.Play(rolls)
	if err != nil {
		return 0, err
	}
	return card.Total, nil
}
