// Package watch re-reads a score sheet whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/tenpin/internal/sheet"
	"github.com/bft-labs/tenpin/pkg/log"
)

// DefaultDebounce is the quiet period after the last change before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches one score sheet file.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   log.Logger
	onChange func(sheet.Sheet)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce delay. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a watcher that calls onChange with every successfully parsed
// version of the sheet at path.
func New(path string, onChange func(sheet.Sheet), opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		logger:   log.NewNoopLogger(),
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run loads the sheet once, then reloads it after each change until ctx is
// canceled. The parent directory is watched so that editors replacing the
// file by rename are picked up. Parse failures are logged and do not stop
// the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info("watching score sheet", log.String("path", w.path), log.Duration("debounce", w.debounce))

	w.reload()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) reload() {
	s, err := sheet.Load(w.path)
	if err != nil {
		w.logger.Warn("score sheet not loaded", log.String("path", w.path), log.Err(err))
		return
	}
	w.logger.Debug("score sheet loaded", log.Int("games", len(s.Games)))
	w.onChange(s)
}
