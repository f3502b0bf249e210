// Package logging provides a logging abstraction layer that decouples the
// extraction pipeline from a specific logging framework.
package logging

// Logger defines the interface for structured logging throughout the application.
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

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names used across the pipeline's log output.
const (
	FieldFile     = "file_path"
	FieldStage    = "stage"
	FieldLine     = "line"
	FieldCategory = "category"
	FieldCount    = "count"
	FieldStatus   = "status"
	FieldDuration = "duration"
)

var defaultLogger Logger = NewLogrusAdapter("info", "text")

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	return defaultLogger
}

// SetLogger replaces the process-wide default logger.
func SetLogger(l Logger) {
	if l != nil {
		defaultLogger = l
	}
}
