// Package logger provides logging functionality for the pr-collector application.
package logger

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted user-facing status message.
	Logf(format string, args ...interface{})

	// Debugf logs a formatted message shown only in verbose mode.
	Debugf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// defaultLogger writes to stderr through charmbracelet/log, keeping stdout
// free for the rendered document.
type defaultLogger struct {
	log *charmlog.Logger
}

// NewDefaultLogger creates a new default logger. Verbose enables debug output.
func NewDefaultLogger(verbose bool) Logger {
	log := charmlog.New(os.Stderr)
	if verbose {
		log.SetLevel(charmlog.DebugLevel)
	}
	return &defaultLogger{log: log}
}

// Logf writes a formatted message at info level.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.log.Infof(format, args...)
}

// Debugf writes a formatted message at debug level.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	d.log.Debugf(format, args...)
}
