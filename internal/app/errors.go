package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the workflow stage that failed.
type AppErrorType int

const (
	// ConfigFailed indicates the configuration could not be loaded or is invalid.
	ConfigFailed AppErrorType = iota
	// PromptFailed indicates answers could not be collected.
	PromptFailed
	// ExperimentFailed indicates the experiment API call failed.
	ExperimentFailed
	// GenerationFailed indicates planning or writing files failed.
	GenerationFailed
	// InitFailed indicates project initialization failed.
	InitFailed
	// Aborted indicates the user declined the confirmation.
	Aborted
)

// String returns the stage name.
func (t AppErrorType) String() string {
	switch t {
	case ConfigFailed:
		return "config"
	case PromptFailed:
		return "prompt"
	case ExperimentFailed:
		return "experiment"
	case GenerationFailed:
		return "generation"
	case InitFailed:
		return "init"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a config stage error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ConfigFailed, message, cause)
}

// NewPromptError creates a prompt stage error.
func NewPromptError(message string, cause error) *AppError {
	return NewAppError(PromptFailed, message, cause)
}

// NewExperimentError creates an experiment stage error.
func NewExperimentError(message string, cause error) *AppError {
	return NewAppError(ExperimentFailed, message, cause)
}

// NewGenerationError creates a generation stage error.
func NewGenerationError(message string, cause error) *AppError {
	return NewAppError(GenerationFailed, message, cause)
}

// NewInitError creates an init error.
func NewInitError(message string, cause error) *AppError {
	return NewAppError(InitFailed, message, cause)
}

// IsAborted reports whether err is a declined confirmation.
func IsAborted(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == Aborted
}
