// Package logging configures the structured application log
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/mmo/internal/apperr"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var errUnknownLevel = &apperr.Error{
	Message: "unknown log level: %s",
}

// ParseLevel maps a config value to a slog level. An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, errUnknownLevel.Fmt(s)
}

// NewRotatingWriter returns a size-rotated log file at path.
func NewRotatingWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup installs a rotating file logger as the slog default. The returned
// closer flushes and releases the file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	w := NewRotatingWriter(path)

	slog.SetDefault(New(w, lvl))

	return w, nil
}
