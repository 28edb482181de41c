package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/relstep/internal"
)

// Represents the relstep command line.
//
// There are no subcommands, so any name is accepted as the artifact,
// including "build" and "version".
type CLI struct {
	Quiet   bool             `short:"q" help:"Only report warnings and errors."`
	Verbose bool             `short:"v" help:"Include caller information in log output."`
	Debug   bool             `short:"d" help:"Enable debug output."`
	Version kong.VersionFlag `help:"Show version information and exit."`

	Artifact   string `arg:"" help:"Artifact to produce, relative to the build root. Its file name selects the binary under target/release." placeholder:"ARTIFACT"`
	SourceRoot string `env:"MESON_PROJECT_SOURCE_ROOT" help:"Project root the toolchain builds in." placeholder:"PATH"`
	BuildRoot  string `env:"MESON_PROJECT_BUILD_ROOT" help:"Meta-build output area." placeholder:"PATH"`
	Toolchain  string `env:"CARGO" help:"Toolchain executable (default: cargo)." placeholder:"PATH"`
	Config     string `short:"c" help:"Configuration file (default: relstep/config.yaml in the XDG config dirs)." placeholder:"PATH"`
	EnvFile    string `help:"Dotenv file with variables for the toolchain environment." placeholder:"PATH"`
}

// Parsed command line of the running process.
var RootCmd CLI

// Parses arguments, configures logging, and runs the build step.
//
// The context is never cancelled. The toolchain runs to completion and an
// interrupt reaches it through the terminal's process group.
func Execute() error {
	ctx := context.Background()

	parser, err := newParser(ctx, &RootCmd)
	if err != nil {
		return err
	}

	kongCtx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	configureLogger()

	return kongCtx.Run()
}

// Creates the kong parser for the given command line.
func newParser(ctx context.Context, root *CLI) (*kong.Kong, error) {
	return kong.New(root,
		kong.Name(internal.Name),
		kong.Description("Builds a release binary with cargo and places it in the meta-build output.\n\n"+
			"Reads the project root from MESON_PROJECT_SOURCE_ROOT and the output area from MESON_PROJECT_BUILD_ROOT."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	slog.SetDefault(NewLogger(os.Stderr, RootCmd.level(), RootCmd.Verbose))
}

// Resolves the log level from the flags, falling back to the build default.
func (c *CLI) level() slog.Level {
	switch {
	case c.Debug:
		return slog.LevelDebug
	case c.Quiet:
		return slog.LevelWarn
	default:
		return internal.DefaultLevel()
	}
}
