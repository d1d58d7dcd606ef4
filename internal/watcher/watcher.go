// Package watcher monitors source directories and re-runs the rewrite
// pipeline when a recognized file changes.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starlink/prologue/internal/lang"
)

// Handler is invoked for each changed file after debouncing.
type Handler func(path string)

// Watcher monitors directories for changes to recognized source files.
type Watcher struct {
	dirs     []string
	watcher  *fsnotify.Watcher
	handler  Handler
	debounce time.Duration

	mu       sync.Mutex
	pending  map[string]*time.Timer
	stopChan chan struct{}
}

// New creates a watcher over the given directories. Events for files
// the language tables do not recognize are ignored.
func New(dirs []string, debounce time.Duration, handler Handler) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			_ = fsWatcher.Close()
			return nil, fmt.Errorf("failed to resolve watch path %s: %w", dir, err)
		}
		abs = append(abs, absDir)
	}

	return &Watcher{
		dirs:     abs,
		watcher:  fsWatcher,
		handler:  handler,
		debounce: debounce,
		pending:  make(map[string]*time.Timer),
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins monitoring. The watch loop runs until the context is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	slog.Info("Starting source watcher", "directories", w.dirs, "debounce", w.debounce)
	go w.watchLoop(ctx)
	return nil
}

// Stop stops monitoring and releases the underlying watcher.
func (w *Watcher) Stop() error {
	close(w.stopChan)

	w.mu.Lock()
	for _, timer := range w.pending {
		timer.Stop()
	}
	w.pending = make(map[string]*time.Timer)
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !lang.Recognized(filepath.Base(event.Name)) {
				continue
			}
			slog.Debug("Source file change detected", "file", event.Name, "op", event.Op.String())
			w.schedule(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Source watcher error", "error", err)
		}
	}
}

// schedule arms (or re-arms) the per-file debounce timer. Editors tend
// to fire several events per save; only the last one runs the handler.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		select {
		case <-w.stopChan:
			return
		default:
		}
		w.handler(path)
	})
}
