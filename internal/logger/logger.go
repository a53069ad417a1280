// Package logger configures structured logging for the CLI.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a level name (case-insensitive) to a slog.Level.
// The second result is false for unknown names, which map to info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup builds a text logger on w at the given level and installs it as
// the slog default. Stdout is reserved for the board, so callers normally
// pass stderr.
func Setup(level string, w io.Writer) *slog.Logger {
	lvl, ok := ParseLevel(level)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	l := slog.New(handler)
	slog.SetDefault(l)

	if !ok {
		l.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return l
}
