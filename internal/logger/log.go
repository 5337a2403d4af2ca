package logger

import (
	"log/slog"
	"os"
	"strings"
)

// BuildLogger returns a JSON logger on stderr. Unknown levels fall back to
// info.
func BuildLogger(level string) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: true,
		Level:     ParseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, ops))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
