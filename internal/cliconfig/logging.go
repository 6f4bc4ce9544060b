package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tenpin/pkg/log"
)

// Logger returns the CLI logger: console output on stderr at the configured
// level, tagged with the component name. An unparsable level falls back to warn.
func Logger(cfg Config) *log.ZerologAdapter {
	level, err := cfg.Level()
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "tenpin").
		Logger()
	return log.NewZerologAdapterWithLogger(logger)
}
