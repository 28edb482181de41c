package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/relstep/internal"
	"github.com/cruciblehq/relstep/internal/cli"
)

// The entry point for relstep.
//
// Initializes logging, displays startup information, and executes the root
// command. A failed build or placement exits with a non-zero code.
func main() {
	slog.SetDefault(cli.NewLogger(os.Stderr, internal.DefaultLevel(), false))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("relstep is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(cli.ExitCode(err))
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
