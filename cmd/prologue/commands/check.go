package commands

import (
	"fmt"
	"os"

	"github.com/starlink/prologue/internal/config"
	"github.com/starlink/prologue/internal/rewrite"
)

// CheckCmd implements the 'check' command: a parse-only pass that
// reports what the rewrite command would do.
type CheckCmd struct {
	Paths []string `arg:"" help:"Source files to inspect"`
}

// Run executes the check command.
func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	opts := buildOptions(cfg, false, "")

	legacy := 0
	for _, path := range c.Paths {
		result, err := rewrite.File(path, opts)
		if err != nil {
			return err
		}
		status := "rewritable"
		if !result.Rewritable() {
			status = "skip"
			if result.Prologues > 0 {
				legacy++
			}
		}
		fmt.Fprintf(os.Stdout, "%s: %d prologue(s) %v [%s]\n",
			path, result.Prologues, result.StyleCounts, status)
	}
	if legacy > 0 {
		return fmt.Errorf("%d file(s) carry legacy or mixed prologues", legacy)
	}
	return nil
}
