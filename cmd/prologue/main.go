package main

import (
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/starlink/prologue/cmd/prologue/commands"
	"github.com/starlink/prologue/internal/version"
)

func main() {
	_ = godotenv.Load()

	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("prologue"),
		kong.Description("Recognize, normalize and rewrite the documentation headers of legacy Starlink source files."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()})
	ctx.FatalIfErrorf(err)
}
