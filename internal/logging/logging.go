// Package logging builds the application logger. The terminal belongs to
// the UI, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options selects the destination and threshold.
type Options struct {
	File  string
	Level string
}

// New returns a logger writing to opt.File, and a close function for it.
// An empty File discards all output.
func New(opt Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opt.Level != "" {
		l, err := log.ParseLevel(opt.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	if opt.File == "" {
		return Discard(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(opt.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opt.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, level), f.Close, nil
}

// NewWriter returns a logfmt logger on w.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "escode",
		Formatter:       log.LogfmtFormatter,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
