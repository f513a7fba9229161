package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/ask-relay/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured logger writing to stdout
// with the appropriate log level and sets it as the default logger for the
// application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	logger := New(cfg, os.Stdout)

	// Set this logger as the default for the application
	// This allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}

// New builds a logger for cfg that writes to w without touching the default
// logger.
func New(cfg config.ServerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.LogLevel),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel parses a log level name (case-insensitive). Unknown names fall
// back to info and a warning is written to stderr.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// This will use the default handler (text output to stderr)
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", name,
			"default_level", "info")
		return slog.LevelInfo
	}
}
