// Package logging configures structured logging for the server and the CLI.
//
// Usage:
//
//	logging.Setup(logging.Options{Level: logging.ParseLevel(os.Getenv("LOG_LEVEL"))})
//	logging.Setup(logging.Options{Level: slog.LevelDebug, JSON: true})
//
// Text output is colored with tint; JSON output uses the standard slog handler
// for log collectors.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the handler installed by Setup.
type Options struct {
	Level  slog.Level
	JSON   bool
	Writer io.Writer // default os.Stderr
}

// Setup installs the default slog logger.
func Setup(opts Options) {
	slog.SetDefault(slog.New(NewHandler(opts)))
}

// NewHandler builds the handler Setup would install.
func NewHandler(opts Options) slog.Handler {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.JSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		AddSource:  opts.Level <= slog.LevelDebug,
	})
}

// ParseLevel maps debug, info, warn and error (any case) to a level.
// Anything else is info.
func ParseLevel(s string) slog.Level {
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
