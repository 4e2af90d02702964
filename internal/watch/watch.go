// Package watch re-runs a callback whenever a prompt file changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives the file content after each change.
type Handler func(content string) error

// Watcher watches a single file. It watches the parent directory so that
// editors which save by rename keep being tracked.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
}

// New creates a watcher for path.
func New(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{path: abs, debounce: debounce, logger: logger}, nil
}

// Run calls handle once with the current content, then after every change,
// until ctx is done. Handler errors are logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.logger.Debug("watching file", zap.String("path", w.path))

	if err := w.fire(handle); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

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
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("file changed", zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if err := w.fire(handle); err != nil {
				w.logger.Warn("failed to process change", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) fire(handle Handler) error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", w.path, err)
	}
	return handle(string(data))
}
