// Package logging builds the charmbracelet/log logger shared by the CLI,
// the loop and the frontends.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix is the default logger prefix.
const Prefix = "turtlerace"

// New creates a logger writing to w at the named level
// (debug, info, warn, error, fatal).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Slog wraps logger for libraries that take a *slog.Logger.
func Slog(logger *log.Logger) *slog.Logger {
	return slog.New(logger)
}

// OpenFile redirects logger to ~/.turtlerace/<name> and returns a closer
// for the file. Frontends that own the terminal use it so log lines do not
// corrupt the screen. When the file cannot be opened the logger is
// silenced instead.
func OpenFile(logger *log.Logger, name string) io.Closer {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.SetOutput(io.Discard)
		return nopCloser{}
	}

	dir := filepath.Join(home, ".turtlerace")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return nopCloser{}
	}

	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.SetOutput(io.Discard)
		return nopCloser{}
	}
	logger.SetOutput(f)
	return f
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
