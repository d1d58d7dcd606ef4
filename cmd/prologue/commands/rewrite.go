package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/starlink/prologue/internal/config"
	"github.com/starlink/prologue/internal/rewrite"
)

// RewriteCmd implements the 'rewrite' command.
type RewriteCmd struct {
	Paths     []string `arg:"" optional:"" help:"Source files to process; reads stdin and writes stdout when omitted"`
	Write     bool     `short:"w" help:"Rewrite files in place (modern-style files only)"`
	Defaults  bool     `help:"Emit placeholder text for missing sections"`
	Copyright string   `help:"Override the generated copyright text"`
	Hint      string   `help:"File name hint for language guessing when reading stdin"`
}

// Run executes the rewrite command.
func (r *RewriteCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	opts := buildOptions(cfg, r.Defaults, r.Copyright)

	if len(r.Paths) == 0 {
		opts.FilenameHint = r.Hint
		result, err := rewrite.Stream(os.Stdin, opts)
		if err != nil {
			return err
		}
		_, err = os.Stdout.WriteString(result.Output)
		return err
	}

	if r.Write {
		skipped := 0
		for _, path := range r.Paths {
			written, result, err := rewrite.InPlace(path, opts)
			if err != nil {
				return err
			}
			if written {
				slog.Info("Rewrote file", "path", path)
			} else if !result.Rewritable() {
				skipped++
			}
		}
		if skipped > 0 {
			return fmt.Errorf("%d of %d files left untouched (legacy or unrecognized prologues)", skipped, len(r.Paths))
		}
		return nil
	}

	for _, path := range r.Paths {
		result, err := rewrite.File(path, opts)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.WriteString(result.Output); err != nil {
			return err
		}
	}
	return nil
}
