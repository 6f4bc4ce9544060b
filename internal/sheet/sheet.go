// Package sheet reads score sheets: TOML files listing named roll sequences.
//
//	[[game]]
//	name = "perfect"
//	rolls = [10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10]
package sheet

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/tenpin/internal/domain"
)

// fileSheet is the on-disk layout.
type fileSheet struct {
	Games []fileGame `toml:"game"`
}

type fileGame struct {
	Name  string `toml:"name"`
	Rolls []int  `toml:"rolls"`
}

// Sheet is a parsed score sheet.
type Sheet struct {
	Path  string
	Games []domain.Game
}

// Load reads and parses the score sheet at path.
func Load(path string) (Sheet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, err
	}
	s, err := Parse(b)
	if err != nil {
		return Sheet{}, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes a score sheet. Unnamed games are named game-N, counting from 1.
func Parse(b []byte) (Sheet, error) {
	var fs fileSheet
	if err := toml.Unmarshal(b, &fs); err != nil {
		return Sheet{}, fmt.Errorf("parse score sheet: %w", err)
	}
	if len(fs.Games) == 0 {
		return Sheet{}, domain.ErrEmptySheet
	}

	games := make([]domain.Game, 0, len(fs.Games))
	for i, g := range fs.Games {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			name = fmt.Sprintf("game-%d", i+1)
		}
		games = append(games, domain.Game{Name: name, Rolls: g.Rolls})
	}
	return Sheet{Games: games}, nil
}
