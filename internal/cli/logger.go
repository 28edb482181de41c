package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Creates a logger writing to w at the given level.
//
// Terminals get pterm's colored output. Anything else, such as a meta-build
// log file, gets plain key=value lines. Verbose adds the caller to each
// record.
func NewLogger(w io.Writer, level slog.Level, verbose bool) *slog.Logger {
	if isTerminal(w) {
		logger := pterm.DefaultLogger.
			WithLevel(ptermLevel(level)).
			WithWriter(w).
			WithCaller(verbose)
		return slog.New(pterm.NewSlogHandler(logger))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	}))
}

// Whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Maps an slog level to the closest pterm level.
func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
