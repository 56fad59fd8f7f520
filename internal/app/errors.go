package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates invalid options or configuration.
	ValidationFailed AppErrorType = iota
	// TargetMissing indicates the target directory doesn't exist or isn't a directory.
	TargetMissing
	// TemplateMissing indicates the named template or the templates directory doesn't exist.
	TemplateMissing
	// TemplateFetchFailed indicates the template could not be loaded.
	TemplateFetchFailed
	// DescriptorInvalid indicates template.toml is malformed.
	DescriptorInvalid
	// PromptFailed indicates an interactive capability failed.
	PromptFailed
	// OverwriteDeclined indicates the user refused to write into a non-empty target.
	OverwriteDeclined
	// SelectionCancelled indicates the user cancelled template selection.
	SelectionCancelled
	// GenerationFailed indicates rendering or writing failed.
	GenerationFailed
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case ValidationFailed:
		return "ValidationFailed"
	case TargetMissing:
		return "TargetMissing"
	case TemplateMissing:
		return "TemplateMissing"
	case TemplateFetchFailed:
		return "TemplateFetchFailed"
	case DescriptorInvalid:
		return "DescriptorInvalid"
	case PromptFailed:
		return "PromptFailed"
	case OverwriteDeclined:
		return "OverwriteDeclined"
	case SelectionCancelled:
		return "SelectionCancelled"
	case GenerationFailed:
		return "GenerationFailed"
	default:
		return "Unknown"
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

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewPromptError creates a prompt failure error.
func NewPromptError(message string, cause error) *AppError {
	return NewAppError(PromptFailed, message, cause)
}

// IsType reports whether err is or wraps an AppError of the given type.
func IsType(err error, typ AppErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == typ
}
