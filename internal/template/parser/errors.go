package parser

import "fmt"

// ParseErrorType represents the type of parsing error.
type ParseErrorType int

const (
	// SyntaxError indicates the template could not be compiled.
	SyntaxError ParseErrorType = iota
	// RenderFailed indicates evaluation of a compiled template failed.
	RenderFailed
	// IncludeNotFound indicates a resource referenced by include_resource doesn't exist.
	IncludeNotFound
	// SecurityViolation indicates a helper argument escapes its base directory.
	SecurityViolation
)

// String returns the string representation of the error type.
func (t ParseErrorType) String() string {
	switch t {
	case SyntaxError:
		return "SyntaxError"
	case RenderFailed:
		return "RenderFailed"
	case IncludeNotFound:
		return "IncludeNotFound"
	case SecurityViolation:
		return "SecurityViolation"
	default:
		return "Unknown"
	}
}

// ParseError represents a template parsing or rendering error.
type ParseError struct {
	// Type is the error type.
	Type ParseErrorType
	// Message is the error message.
	Message string
	// File is the file path where the error occurred.
	File string
	// Helper is the helper that raised the error, if any.
	Helper string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Helper != "" {
		msg = fmt.Sprintf("%s (helper: %s)", msg, e.Helper)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, msg)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// newParseError creates a new ParseError with the given type and message.
func newParseError(typ ParseErrorType, message string, cause error) *ParseError {
	return &ParseError{
		Type:    typ,
		Message: message,
		Cause:   cause,
	}
}

// newHelperError creates a ParseError raised from inside a helper.
func newHelperError(typ ParseErrorType, helper, message string, cause error) *ParseError {
	return &ParseError{
		Type:    typ,
		Message: message,
		Helper:  helper,
		Cause:   cause,
	}
}
