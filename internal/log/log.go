// Package log constructs the application's zap logger.
//
// Logs always go to a file, never to the terminal: the TUI owns the
// terminal, and writing log lines into the alt screen would corrupt it.
package log

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a logger writing JSON lines to path. verbose lowers the
// level to debug. If the log file cannot be set up the application still
// runs: logging is never worth crashing the UI over, so a no-op logger is
// returned instead of an error the caller would have to ignore anyway.
func New(path string, verbose bool) *zap.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
