package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
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

// SetupLogger opens the log file and installs a handler as the slog
// default. The terminal belongs to the UI, so nothing is written to
// stdout or stderr. When cfg.Path is empty the file goes to dataDir.
func SetupLogger(cfg LogConfig, dataDir string) (*slog.Logger, io.Closer, error) {
	path := cfg.Path
	if path == "" {
		path = filepath.Join(dataDir, "mathquest.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := NewLogger(f, cfg)
	slog.SetDefault(logger)
	return logger, f, nil
}

// NewLogger builds a logger writing to w in the configured format.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("app", "mathquest")
}
