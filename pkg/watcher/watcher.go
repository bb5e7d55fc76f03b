// Package watcher reruns a callback when schema or description files change
// on disk. It backs the CLI's --watch mode.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the settle window applied before the callback
// fires. Zero or negative values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher invokes a callback after any of a fixed set of files changes.
// It watches the parent directories rather than the files themselves, so
// editors that replace files on save (rename plus create) keep triggering.
type Watcher struct {
	notify   *fsnotify.Watcher
	targets  map[string]struct{}
	debounce time.Duration
}

// New builds a watcher over the given file paths. Empty paths are skipped;
// at least one real path is required.
func New(paths []string, options ...Option) (*Watcher, error) {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}

	w := &Watcher{
		notify:   notify,
		targets:  make(map[string]struct{}, len(paths)),
		debounce: defaultDebounce,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}

	dirs := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			notify.Close()
			return nil, fmt.Errorf("watcher: resolve %s: %w", path, err)
		}
		w.targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	if len(w.targets) == 0 {
		notify.Close()
		return nil, errors.New("watcher: at least one path is required")
	}

	for dir := range dirs {
		if err := notify.Add(dir); err != nil {
			notify.Close()
			return nil, fmt.Errorf("watcher: watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Close releases the underlying notifier. Run returns once closed.
func (w *Watcher) Close() error {
	return w.notify.Close()
}

// Run blocks, calling onChange with the changed path once events settle.
// It returns ctx.Err() on cancellation and nil when the watcher closes.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	if onChange == nil {
		return errors.New("watcher: onChange callback is required")
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.notify.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			pending = filepath.Clean(event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			timerC = timer.C
		case err, ok := <-w.notify.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher: %w", err)
		case <-timerC:
			timer = nil
			timerC = nil
			onChange(pending)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	_, ok := w.targets[filepath.Clean(event.Name)]
	return ok
}
