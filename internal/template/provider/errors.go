package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderNotFound indicates the named template does not exist.
	ProviderNotFound ProviderErrorType = iota
	// ProviderReadFailed indicates the template could not be read.
	ProviderReadFailed
	// ProviderInvalidName indicates a template name that is not a plain directory name.
	ProviderInvalidName
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderNotFound:
		return "NotFound"
	case ProviderReadFailed:
		return "ReadFailed"
	case ProviderInvalidName:
		return "InvalidName"
	default:
		return "Unknown"
	}
}

// ProviderError represents a template source error.
type ProviderError struct {
	Type ProviderErrorType
	// Provider is the provider name ("builtin" or "custom").
	Provider string
	// Template is the requested template name.
	Template string
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s template %q [%s]: %s: %v", e.Provider, e.Template, e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s template %q [%s]: %s", e.Provider, e.Template, e.Type, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, name string) *ProviderError {
	return &ProviderError{Type: ProviderNotFound, Provider: provider, Template: name, Message: "template not found"}
}

// NewReadError creates a read failure error.
func NewReadError(provider, name string, cause error) *ProviderError {
	return &ProviderError{Type: ProviderReadFailed, Provider: provider, Template: name, Message: "failed to read template", Cause: cause}
}

// NewInvalidNameError creates an invalid name error.
func NewInvalidNameError(provider, name string) *ProviderError {
	return &ProviderError{Type: ProviderInvalidName, Provider: provider, Template: name, Message: "template name must be a single directory name"}
}
