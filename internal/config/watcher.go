package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of filesystem events an editor emits on
// save into a single reload.
const debounceDelay = 200 * time.Millisecond

// Watcher invokes a callback when the config file changes on disk. It
// watches the containing directory rather than the file itself so
// save-via-rename (the common editor pattern) keeps working.
//
// The callback runs on the watcher's own goroutine; callers that need the
// change handled on a specific thread must forward it themselves.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onChange func()
	logger   *slog.Logger
	done     chan struct{}
}

// Watch starts watching the config file at path. Close releases the watch.
func Watch(path string, onChange func(), logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Pending debounced callbacks are dropped.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("config file changed", "op", ev.Op.String())
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.fire)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}

func (w *Watcher) fire() {
	select {
	case <-w.done:
	default:
		w.onChange()
	}
}
