// Package watch reloads the picker configuration file when it changes on
// disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/tablepick/internal/config"
	"github.com/alexisbeaulieu97/tablepick/internal/gate"
	"github.com/alexisbeaulieu97/tablepick/internal/logger"
	"github.com/alexisbeaulieu97/tablepick/internal/ports"
)

// ReloadFunc receives each successfully parsed configuration.
type ReloadFunc func(*config.File)

// Watcher watches a single config file. The parent directory is watched so
// that editors which replace the file on save are still observed.
type Watcher struct {
	path     string
	debounce *gate.Debouncer
	log      ports.Logger
	onReload ReloadFunc
}

// New creates a watcher for path. A zero debounce uses the gate default.
func New(path string, debounce time.Duration, log ports.Logger, onReload ReloadFunc) *Watcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: gate.NewDebouncer(debounce),
		log:      log.With("component", "watcher"),
		onReload: onReload,
	}
}

// Run blocks until ctx is done, reloading the file after each burst of
// writes. Parse failures are logged and the previous configuration stays in
// effect.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	defer w.debounce.Cancel()

	w.log.Debug(ctx, "watching config", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.debounce.Trigger(func() { w.reload(ctx) })
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn(ctx, "watch error", "error", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) reload(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	cfg, err := config.ParseFile(w.path)
	if err != nil {
		w.log.Warn(ctx, "config reload failed", "path", w.path, "error", err)
		return
	}
	w.log.Info(ctx, "config reloaded", "path", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
