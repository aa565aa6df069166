// Package log builds the slog.Logger used by wsctl.
package log

import (
	"log/slog"
	"os"
)

// New returns a text logger on stderr whose level follows the -v count:
// warnings by default, info at -v, debug at -vv and beyond.
func New(verbosity int) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: Level(verbosity),
	}))
}

func Level(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
