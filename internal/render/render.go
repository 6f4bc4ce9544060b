// Package render prints scored games for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bft-labs/tenpin/internal/app"
	"github.com/bft-labs/tenpin/internal/domain"
)

// Printer writes game results.
type Printer interface {
	Print(name string, card domain.Card[int]) error
	Fail(name string, err error) error
}

// New returns the printer for format ("text" or "json").
func New(format string, w io.Writer) (Printer, error) {
	switch format {
	case "text", "":
		return &textPrinter{w: w}, nil
	case "json":
		return &jsonPrinter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidConfig, format)
	}
}

// Results prints every result and returns the number of failed games.
func Results(p Printer, results []app.Result) (failed int, err error) {
	for _, r := range results {
		if r.Err != nil {
			failed++
			err = p.Fail(r.Game.Name, r.Err)
		} else {
			err = p.Print(r.Game.Name, r.Card)
		}
		if err != nil {
			return failed, err
		}
	}
	return failed, nil
}

type textPrinter struct {
	w io.Writer
}

func (p *textPrinter) Print(name string, card domain.Card[int]) error {
	_, err := fmt.Fprintf(p.w, "%s\n  frames:  %v\n  scores:  %v\n  running: %v\n  total:   %d\n\n",
		name, card.Frames, card.Scores, card.Running(), card.Total)
	return err
}

func (p *textPrinter) Fail(name string, err error) error {
	_, werr := fmt.Fprintf(p.w, "%s\n  error:   %v\n\n", name, err)
	return werr
}

// jsonGame is one line of JSON output.
type jsonGame struct {
	Game    string   `json:"game"`
	Frames  []string `json:"frames,omitempty"`
	Scores  []int    `json:"scores,omitempty"`
	Running []int    `json:"running,omitempty"`
	Total   int      `json:"total"`
	Error   string   `json:"error,omitempty"`
}

type jsonPrinter struct {
	enc *json.Encoder
}

func (p *jsonPrinter) Print(name string, card domain.Card[int]) error {
	frames := make([]string, len(card.Frames))
	for i, f := range card.Frames {
		frames[i] = f.String()
	}
	return p.enc.Encode(jsonGame{
		Game:    name,
		Frames:  frames,
		Scores:  card.Scores,
		Running: card.Running(),
		Total:   card.Total,
	})
}

func (p *jsonPrinter) Fail(name string, err error) error {
	return p.enc.Encode(jsonGame{Game: name, Error: err.Error()})
}
