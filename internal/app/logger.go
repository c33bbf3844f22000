package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hangeul-backend/internal/config"
)

// NewLogger builds the process logger and installs it with slog.SetDefault.
//
// Format "json" writes one JSON object per record; anything else writes
// text with source locations, which is what local development wants.
// Level is debug, info, warn or error (case-insensitive), defaulting to info.
// Every record carries the application environment.
func NewLogger(cfg config.LogConfig, env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(slog.String("env", env))
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
