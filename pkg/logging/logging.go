// Package logging configures structured logging for log/slog.
//
// Usage:
//
//	logging.Setup("info", "pretty")  // colored output via tint on stderr
//	logging.Setup("debug", "json")   // JSON lines on stdout
//
// Levels: debug, info, warn, error (default: info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default logger for the given level and format.
func Setup(level, format string) {
	slog.SetDefault(New(level, format))
}

// New builds a logger without installing it. Format "json" writes JSON to
// stdout; anything else writes colored text to stderr.
func New(level, format string) *slog.Logger {
	if strings.ToLower(format) == "json" {
		return NewWithWriter(os.Stdout, ParseLevel(level), true)
	}
	return NewWithWriter(os.Stderr, ParseLevel(level), false)
}

// NewWithWriter builds a logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level, json bool) *slog.Logger {
	if json {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
