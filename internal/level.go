package internal

import "log/slog"

// Default log level name. Set via ldflags, e.g.
//
//	-X github.com/cruciblehq/relstep/internal.rawLevel=debug
var rawLevel = "info"

// Returns the log level used before flags are parsed and when no level flag
// is given. Unknown values fall back to info.
func DefaultLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(rawLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
