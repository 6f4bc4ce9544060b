package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (TENPIN_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("TENPIN_FILE"), &cfg.File)
	s.setString("format", os.Getenv("TENPIN_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("TENPIN_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("verify", os.Getenv("TENPIN_VERIFY"), &cfg.Verify)

	if err := s.setRollsFromString("demo", os.Getenv("TENPIN_DEMO_ROLLS"), &cfg.DemoRolls); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("TENPIN_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	return nil
}
