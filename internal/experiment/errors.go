package experiment

import "fmt"

// ErrorKind classifies experiment API failures.
type ErrorKind string

const (
	// InvalidAuth means the API rejected the auth token (401/403).
	InvalidAuth ErrorKind = "invalid-auth"
	// InvalidPayload means the API rejected the request (400/404/422).
	InvalidPayload ErrorKind = "invalid-payload"
	// Network covers transport failures, server errors and undecodable bodies.
	Network ErrorKind = "network"
	// CreateFailed means a create request did not produce an experiment.
	CreateFailed ErrorKind = "create-failed"
)

// APIError is returned for every failed experiment API call.
type APIError struct {
	Kind       ErrorKind
	Operation  string
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("experiment API %s failed (%s)", e.Operation, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error.
func NewNetworkError(op string, cause error) *APIError {
	return &APIError{Kind: Network, Operation: op, Cause: cause}
}

// NewCreateFailedError creates a create-failed error.
func NewCreateFailedError(status int, message string) *APIError {
	return &APIError{Kind: CreateFailed, Operation: opCreate, StatusCode: status, Message: message}
}

// statusError maps a non-success HTTP status to an APIError.
func statusError(op string, status int, message string) *APIError {
	kind := Network
	switch {
	case status == 401 || status == 403:
		kind = InvalidAuth
	case status == 400 || status == 404 || status == 422:
		kind = InvalidPayload
	case op == opCreate && status < 500:
		kind = CreateFailed
	}
	return &APIError{Kind: kind, Operation: op, StatusCode: status, Message: message}
}
