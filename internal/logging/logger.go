package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New creates the application logger writing to w.
// Debug enables per-command tracing; otherwise only warnings and errors are kept.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "justrun",
		ReportTimestamp: true,
	})
}

// NewNop returns a logger that discards everything.
func NewNop() *log.Logger {
	return log.New(io.Discard)
}

// Open returns a logger for the interactive picker. The picker owns the
// terminal, so logs go to path when given and are dropped otherwise.
// The returned close func is never nil.
func Open(path string, debug bool) (*log.Logger, func() error, error) {
	if path == "" {
		return NewNop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("could not create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	return New(f, debug), f.Close, nil
}
