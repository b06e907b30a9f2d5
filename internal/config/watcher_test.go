package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func watcherLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitForChange(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change callback")
	}
}

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("mode: hotkey\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, watcherLogger())
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("mode: double_click\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	waitForChange(t, changed)
}

func TestWatcher_FiresWhenFileCreatedLater(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	changed := make(chan struct{}, 1)
	w, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, watcherLogger())
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("mode: hotkey\n"), 0o644); err != nil {
		t.Fatalf("create: %v", err)
	}

	waitForChange(t, changed)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("mode: hotkey\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, watcherLogger())
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("sibling write: %v", err)
	}

	select {
	case <-changed:
		t.Fatalf("callback fired for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")
	if _, err := Watch(path, func() {}, watcherLogger()); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
