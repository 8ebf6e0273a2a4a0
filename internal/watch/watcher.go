// Package watch re-runs a conversion whenever the input sheet changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/JonMunkholm/griptip/internal/logging"
)

// RebuildFunc performs one conversion.
type RebuildFunc func(ctx context.Context) error

// Watcher watches a single file through its parent directory, so editors
// that replace the file on save keep triggering events.
type Watcher struct {
	path     string
	debounce time.Duration
	rebuild  RebuildFunc
	ready    chan struct{}
}

// New creates a Watcher for path. Bursts of events within debounce collapse
// into one rebuild.
func New(path string, debounce time.Duration, rebuild RebuildFunc) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		rebuild:  rebuild,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the directory watch is registered.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. Rebuild errors are logged and do not
// stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	close(w.ready)

	logger := logging.WithFields(ctx, "path", w.path)
	logger.Info("watching input", "debounce", w.debounce)

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
			logger.Info("watcher stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !shouldRebuild(event, w.path) {
				continue
			}
			logger.Debug("input changed", "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-fire:
			fire = nil
			if err := w.rebuild(ctx); err != nil {
				logger.Error("rebuild failed", "error", err)
			}
		}
	}
}

// shouldRebuild reports whether event is a content change of target.
func shouldRebuild(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
