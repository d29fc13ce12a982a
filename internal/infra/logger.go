package infra

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger creates a slog.Logger for the harness. Logs go to stderr so
// stdout stays reserved for the benchmark tables; when a log file is
// configured it is rotated via lumberjack and written in parallel.
func NewLogger(cfg *Config) *slog.Logger {
	var writer io.Writer = os.Stderr

	if cfg.Logging.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0755); err == nil {
			fileLogger := &lumberjack.Logger{
				Filename:   cfg.Logging.File,
				MaxSize:    10, // Megabytes
				MaxBackups: 3,
				MaxAge:     28, // Days
				Compress:   true,
			}
			writer = io.MultiWriter(os.Stderr, fileLogger)
		}
		// On MkdirAll failure we silently fall back to stderr only.
	}

	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))
}
