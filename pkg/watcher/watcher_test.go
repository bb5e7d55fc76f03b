package watcher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thalesmg/hocon/pkg/watcher"
)

const settleTimeout = 5 * time.Second

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func startWatcher(t *testing.T, w *watcher.Watcher) (<-chan string, context.CancelFunc, <-chan error) {
	t.Helper()
	changes := make(chan string, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(path string) { changes <- path })
	}()
	return changes, cancel, done
}

func TestNewRequiresPaths(t *testing.T) {
	for _, paths := range [][]string{nil, {}, {"", "  "}} {
		if _, err := watcher.New(paths); err == nil {
			t.Fatalf("expected error for %q", paths)
		}
	}
}

func TestNewRequiresExistingParent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "schema.yaml")
	if _, err := watcher.New([]string{missing}); err == nil {
		t.Fatalf("expected error for unwatchable parent")
	}
}

func TestRunRequiresCallback(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "schema.yaml")
	writeFile(t, target, "a: 1")

	w, err := watcher.New([]string{target})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := w.Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil callback")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "schema.yaml")
	writeFile(t, target, "a: 1")

	w, err := watcher.New([]string{target}, watcher.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	changes, cancel, done := startWatcher(t, w)
	defer cancel()

	// Churn on an unrelated file in the same directory must not surface.
	writeFile(t, filepath.Join(dir, "notes.txt"), "scratch")
	writeFile(t, target, "a: 2")

	select {
	case got := <-changes:
		want, err := filepath.Abs(target)
		if err != nil {
			t.Fatalf("abs: %v", err)
		}
		if got != want {
			t.Fatalf("changed path = %q, want %q", got, want)
		}
	case <-time.After(settleTimeout):
		t.Fatalf("no change reported")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
}

func TestWatcherSurvivesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "schema.yaml")
	writeFile(t, target, "a: 1")

	w, err := watcher.New([]string{target}, watcher.WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	changes, cancel, _ := startWatcher(t, w)
	defer cancel()

	// Editors often save by writing a scratch file and renaming it over the
	// target, which replaces the inode a file-level watch would cling to.
	scratch := filepath.Join(dir, ".schema.yaml.tmp")
	writeFile(t, scratch, "a: 2")
	if err := os.Rename(scratch, target); err != nil {
		t.Fatalf("rename: %v", err)
	}

	select {
	case got := <-changes:
		want, err := filepath.Abs(target)
		if err != nil {
			t.Fatalf("abs: %v", err)
		}
		if got != want {
			t.Fatalf("changed path = %q, want %q", got, want)
		}
	case <-time.After(settleTimeout):
		t.Fatalf("replace not detected")
	}
}

func TestRunStopsWhenClosed(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "schema.yaml")
	writeFile(t, target, "a: 1")

	w, err := watcher.New([]string{target})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, cancel, done := startWatcher(t, w)
	defer cancel()

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after Close", err)
		}
	case <-time.After(settleTimeout):
		t.Fatalf("Run did not stop after Close")
	}
}
