// Package log provides the logging abstraction used by tenpin components.
//
// The [Logger] interface keeps library and application code independent of
// any particular logging backend. A zerolog adapter and a no-op logger are
// provided.
//
// # Usage
//
//	logger := log.New(os.Stderr, zerolog.InfoLevel)
//	logger.Info("game scored", log.String("game", "perfect"), log.Int("total", 300))
//
// Child loggers carry fields into every entry:
//
//	gameLog := logger.With(log.String("game", name))
//
// Tests use the no-op logger:
//
//	logger := log.NewNoopLogger()
package log
