package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/starlink/prologue/internal/config"
	"github.com/starlink/prologue/internal/rewrite"
	"github.com/starlink/prologue/internal/watcher"
)

// WatchCmd implements the 'watch' command: continuous in-place
// rewriting of recognized source files as they change.
type WatchCmd struct {
	Dirs      []string `arg:"" help:"Directories to watch"`
	Defaults  bool     `help:"Emit placeholder text for missing sections"`
	Copyright string   `help:"Override the generated copyright text"`
}

// Run executes the watch command until interrupted.
func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	opts := buildOptions(cfg, w.Defaults, w.Copyright)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	debounce := time.Duration(cfg.Watch.DebounceSeconds) * time.Second
	srcWatcher, err := watcher.New(w.Dirs, debounce, func(path string) {
		written, _, err := rewrite.InPlace(path, opts)
		switch {
		case err != nil:
			slog.Error("Rewrite failed", "path", path, "error", err)
		case written:
			slog.Info("Rewrote file", "path", path)
		}
	})
	if err != nil {
		return err
	}

	if err := srcWatcher.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := srcWatcher.Stop(); err != nil {
			slog.Warn("Failed to stop watcher", "error", err)
		}
	}()

	slog.Info("Watching for changes, press Ctrl-C to stop")
	<-ctx.Done()
	return nil
}
