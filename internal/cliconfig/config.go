package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tenpin/internal/domain"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration for tenpin.
type Config struct {
	// DemoRolls is scored when no rolls or sheet are given.
	DemoRolls []int
	File      string

	Format   string
	LogLevel string
	Verify   bool

	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DemoRolls: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		Format:    FormatText,
		LogLevel:  zerolog.LevelWarnValue,
		Debounce:  100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q (want %s or %s)", domain.ErrInvalidConfig, c.Format, FormatText, FormatJSON)
	}

	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = zerolog.LevelWarnValue
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}

	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
}

// ParseRolls converts roll arguments such as "10" or "7,3" into pin counts.
// Arguments may be separated by commas, whitespace, or both. Arguments that
// hold no rolls at all (for example "" or ",") are an error.
func ParseRolls(args []string) ([]int, error) {
	var rolls []int
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("parse roll %q: %w", field, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("parse roll %q: negative pin count", field)
			}
			rolls = append(rolls, n)
		}
	}
	if len(args) > 0 && len(rolls) == 0 {
		return nil, fmt.Errorf("parse rolls %q: no pin counts given", args)
	}
	return rolls, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setRolls sets a roll list if not empty and flag not changed.
func (s *configSetter) setRolls(flag string, value []int, dst *[]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]int(nil), value...)
}

// setRollsFromString parses a comma separated roll list.
// Used for environment variables that come as strings.
func (s *configSetter) setRollsFromString(flag, value string, dst *[]int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	rolls, err := ParseRolls([]string{value})
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setRolls(flag, rolls, dst)
	return nil
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
