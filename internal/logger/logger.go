package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"flappypro/backend/internal/config"
)

// New builds the service logger writing text records to w.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// MustInit creates the process logger from the configuration and installs it
// as the slog default.
func MustInit(cfg *config.Config) *slog.Logger {
	log := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)
	return log
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
