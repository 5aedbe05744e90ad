// Package logger provides structured logging setup using Go's slog package.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configures the logger setup.
type Options struct {
	Level   string // debug, info, warn, error
	Console bool   // text output for local runs (LOG_FORMAT=console)
	Output  io.Writer
}

// Setup configures the global slog logger with correlation ID support.
func Setup(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if opts.Console {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	handler = NewCorrelationHandler(handler)

	slog.SetDefault(slog.New(handler).With("service", "card-checkout"))
}

// ParseLevel converts string level to slog.Level. Unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
