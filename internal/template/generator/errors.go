package generator

import "fmt"

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorWriteFailed indicates a file write operation failed.
	GeneratorWriteFailed GeneratorErrorType = iota
	// GeneratorProcessFailed indicates template rendering failed.
	GeneratorProcessFailed
	// GeneratorPathError indicates an invalid or unsafe path was encountered.
	GeneratorPathError
	// GeneratorSourceMissing indicates a template source could not be read.
	GeneratorSourceMissing
)

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	Type    GeneratorErrorType
	Message string
	// File is the file path related to the error (if applicable).
	File  string
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{Type: typ, Message: message, File: file, Cause: cause}
}

// FileGenerationError reports one (source, destination) pair that failed.
// Generation continues with the remaining pairs.
type FileGenerationError struct {
	Source      string
	Destination string
	Cause       error
}

// Error implements the error interface.
func (e *FileGenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s from %s: %v", e.Destination, e.Source, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *FileGenerationError) Unwrap() error {
	return e.Cause
}
