// Package logger provides the structured logger used by the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the leveled logging interface used across the module.
type Logger interface {
	Info(msg string, keyvals ...any)

	Warn(msg string, keyvals ...any)

	Error(msg string, keyvals ...any)

	Debug(msg string, keyvals ...any)
}

// New returns a JSON logger on stderr at the named level.
func New(level string) Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a JSON logger writing to w. Unknown levels fall back
// to info.
func NewWithWriter(w io.Writer, level string) Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true,
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
