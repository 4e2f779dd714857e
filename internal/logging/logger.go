// Package logging provides a logging abstraction layer that decouples the application
// from specific logging frameworks.
package logging

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field)                 {}
func (nopLogger) Info(string, ...Field)                  {}
func (nopLogger) Warn(string, ...Field)                  {}
func (nopLogger) Error(string, ...Field)                 {}
func (n nopLogger) WithError(error) Logger               { return n }
func (n nopLogger) WithField(string, interface{}) Logger { return n }
func (n nopLogger) WithFields(...Field) Logger           { return n }
