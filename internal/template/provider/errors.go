package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderFetchFailed indicates the template could not be read.
	ProviderFetchFailed ProviderErrorType = iota
	// ProviderNotFound indicates the template or templates directory was not found.
	ProviderNotFound
	// ProviderInvalidName indicates the template name is not a single path segment.
	ProviderInvalidName
	// ProviderInvalidTemplate indicates the template structure is invalid.
	ProviderInvalidTemplate
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderFetchFailed:
		return "FetchFailed"
	case ProviderNotFound:
		return "NotFound"
	case ProviderInvalidName:
		return "InvalidName"
	case ProviderInvalidTemplate:
		return "InvalidTemplate"
	default:
		return "Unknown"
	}
}

// ProviderError represents a provider-specific error.
type ProviderError struct {
	// Type is the error type classification.
	Type ProviderErrorType
	// Message is the human-readable error message.
	Message string
	// Provider is the provider name (e.g., "local").
	Provider string
	// Path is the template path that caused the error.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for '%s': %s",
		e.Provider, e.Type.String(), e.Path, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, path, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		Path:     path,
		Cause:    cause,
	}
}

// NewFetchError creates a fetch failed error.
func NewFetchError(provider, path string, cause error) *ProviderError {
	return NewProviderError(ProviderFetchFailed, provider, path, "failed to read template", cause)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, path string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, path, "template not found", nil)
}

// NewInvalidNameError creates an invalid name error.
func NewInvalidNameError(provider, name string) *ProviderError {
	return NewProviderError(ProviderInvalidName, provider, name, "template name must be a single directory name", nil)
}

// NewInvalidTemplateError creates an invalid template error.
func NewInvalidTemplateError(provider, path, message string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidTemplate, provider, path, message, cause)
}

// DescriptorError reports a malformed template descriptor.
type DescriptorError struct {
	// File is the descriptor path.
	File string
	// Variable is the offending variable name, empty for syntax errors.
	Variable string
	// Line and Column locate syntax errors (1-based, zero when unknown).
	Line   int
	Column int
	// Message describes the problem.
	Message string
	// Cause is the underlying decode error, if any.
	Cause error
}

// Error implements the error interface.
func (e *DescriptorError) Error() string {
	loc := e.File
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", e.File, e.Line, e.Column)
	}
	if e.Variable != "" {
		return fmt.Sprintf("invalid descriptor %s: variable %q: %s", loc, e.Variable, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid descriptor %s: %s: %v", loc, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid descriptor %s: %s", loc, e.Message)
}

// Unwrap returns the underlying cause.
func (e *DescriptorError) Unwrap() error {
	return e.Cause
}

func newVariableError(file, name, format string, args ...interface{}) *DescriptorError {
	return &DescriptorError{
		File:     file,
		Variable: name,
		Message:  fmt.Sprintf(format, args...),
	}
}
