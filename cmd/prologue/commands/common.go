package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/starlink/prologue/internal/config"
	"github.com/starlink/prologue/internal/rewrite"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"prologue.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Rewrite RewriteCmd `cmd:"" default:"withargs" help:"Normalize prologues in source files or a pipe"`
	Check   CheckCmd   `cmd:"" help:"Report prologue styles and diagnostics without writing"`
	Watch   WatchCmd   `cmd:"" help:"Rewrite prologues continuously as files change"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// buildOptions combines configuration and command flags into pipeline
// options. Command flags win where both specify a value.
func buildOptions(cfg *config.Config, defaults bool, override string) rewrite.Options {
	opts := rewrite.Options{
		WriteDefaults:     cfg.WriteDefaults || defaults,
		EnsureLicence:     true,
		EnsureCopyright:   true,
		CopyrightOverride: cfg.CopyrightOverride,
		FundingBodies:     cfg.Bodies(),
	}
	if override != "" {
		opts.CopyrightOverride = override
	}
	return opts
}
