// Package logging configures the process-wide structured logger.
//
// Records are emitted through log/slog and rendered by charmbracelet/log so
// library code can call slog directly while the CLI controls level and
// destination.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// New returns a slog logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	handler := clog.NewWithOptions(w, clog.Options{
		Level:  ParseLevel(level),
		Prefix: "quest",
	})

	return slog.New(handler)
}

// Setup installs a logger writing to w at level as the slog default and
// returns it. A nil w means stderr.
func Setup(w io.Writer, level string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := New(w, level)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel maps a level name to a log level. Unknown names fall back to warn.
func ParseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.WarnLevel
	}
}
