// Package logging provides a logging abstraction that decouples the pipeline
// from the underlying logging framework.
package logging

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names so log output stays consistent across packages.
const (
	FieldFile     = "file"
	FieldFormat   = "format"
	FieldCount    = "count"
	FieldCategory = "category"
	FieldKeyword  = "keyword"
	FieldStrategy = "strategy"
	FieldColumn   = "column"
	FieldModel    = "model_path"
	FieldRow      = "row"
)
