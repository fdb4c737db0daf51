package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates no configuration file was found.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the file could not be parsed or has wrongly typed values.
	ConfigInvalid
	// ConfigValidationFailed indicates required sections or fields are missing.
	ConfigValidationFailed
)

// String returns a short name for the error type.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "not found"
	case ConfigInvalid:
		return "invalid"
	case ConfigValidationFailed:
		return "validation failed"
	default:
		return "unknown"
	}
}

// ConfigError represents a configuration-related error. It is always fatal
// and raised before any prompt is shown.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	// File is the configuration file path.
	File string
	// Field is the dotted config key that caused the error, if known.
	Field string
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	where := e.File
	if e.Field != "" {
		where = fmt.Sprintf("%s [field: %s]", e.File, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("configuration %s in %s: %s: %v", e.Type, where, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration %s in %s: %s", e.Type, where, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(typ ConfigErrorType, file, message string) *ConfigError {
	return &ConfigError{Type: typ, File: file, Message: message}
}

// NewConfigErrorWithField creates a new ConfigError for a specific field.
func NewConfigErrorWithField(typ ConfigErrorType, file, field, message string) *ConfigError {
	return &ConfigError{Type: typ, File: file, Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError wrapping cause.
func NewConfigErrorWithCause(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{Type: typ, File: file, Message: message, Cause: cause}
}
