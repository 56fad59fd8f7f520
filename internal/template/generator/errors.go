package generator

import (
	"errors"
	"fmt"
)

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorWriteFailed indicates a file write operation failed.
	GeneratorWriteFailed GeneratorErrorType = iota
	// GeneratorProcessFailed indicates content rendering failed.
	GeneratorProcessFailed
	// GeneratorPathError indicates a rendered path escapes the output root.
	GeneratorPathError
	// GeneratorPathRenderFailed indicates path rendering failed.
	GeneratorPathRenderFailed
	// GeneratorWalkFailed indicates a template entry could not be read.
	// It is the only non-fatal generator error.
	GeneratorWalkFailed
)

// String returns the string representation of the error type.
func (t GeneratorErrorType) String() string {
	switch t {
	case GeneratorWriteFailed:
		return "WriteFailed"
	case GeneratorProcessFailed:
		return "ProcessFailed"
	case GeneratorPathError:
		return "PathError"
	case GeneratorPathRenderFailed:
		return "PathRenderFailed"
	case GeneratorWalkFailed:
		return "WalkFailed"
	default:
		return "Unknown"
	}
}

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
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

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}

// IsFatal reports whether err aborts generation.
func IsFatal(err error) bool {
	var ge *GeneratorError
	return !errors.As(err, &ge) || ge.Type != GeneratorWalkFailed
}
