package parser

import "fmt"

// ParseErrorType represents the type of parsing error.
type ParseErrorType int

const (
	// MissingVariable indicates a token whose path does not resolve.
	MissingVariable ParseErrorType = iota
	// UnclosedTag indicates an opening "<%=" without a matching "%>".
	UnclosedTag
	// EmptyTag indicates a tag without a variable path.
	EmptyTag
)

// ParseError represents a template parsing error with detailed context.
type ParseError struct {
	Type    ParseErrorType
	Message string
	// Line is the line number where the error occurred (1-indexed, 0 if unknown).
	Line int
	// Token is the offending tag text.
	Token string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s (tag: %s)", e.Line, e.Message, e.Token)
	}
	if e.Token != "" {
		return fmt.Sprintf("%s (tag: %s)", e.Message, e.Token)
	}
	return e.Message
}

func newParseError(typ ParseErrorType, line int, token, message string) *ParseError {
	return &ParseError{Type: typ, Line: line, Token: token, Message: message}
}
