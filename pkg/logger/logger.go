// Package logger builds the engine's structured logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Options configures the logger.
type Options struct {
	Service string
	Level   string
}

// New creates a JSON slog logger writing to w. Hosts that speak a protocol
// on stdout should pass stderr.
func New(w io.Writer, opts Options) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	})

	base := slog.New(h)
	if opts.Service != "" {
		base = base.With("service", opts.Service)
	}
	return base
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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
