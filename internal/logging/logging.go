// Package logging configures the process-wide structured logger.
//
// Logs always go to a separate writer from search results (stderr in the
// binary) so that matches on stdout stay machine readable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output receives the log records.
	Output io.Writer
}

// LevelFor maps the application debug flag to a log level name
func LevelFor(debug bool) string {
	if debug {
		return "debug"
	}
	return "info"
}

// Setup builds the logger described by cfg and installs it as the slog
// default. Terminals get text records, anything else JSON. Every record
// carries who=bigly.
func Setup(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	logger := slog.New(newHandler(isTerminal(output), output, opts)).
		With(slog.String("who", "bigly"))
	slog.SetDefault(logger)

	return logger
}

func newHandler(text bool, output io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if text {
		return slog.NewTextHandler(output, opts)
	}
	return slog.NewJSONHandler(output, opts)
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
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
