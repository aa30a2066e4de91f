// Package errors provides structured pipeline errors with context fields and process exit code mapping.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrorType represents the category of failure that aborted a run.
type ErrorType string

const (
	// TypeInput indicates a missing, unreadable or malformed dataset (exit 2)
	TypeInput ErrorType = "input"
	// TypeExternal indicates an external dependency failed, e.g. the lexicon download (exit 3)
	TypeExternal ErrorType = "external"
	// TypeScoring indicates the analyzer could not score a record (exit 4)
	TypeScoring ErrorType = "scoring"
	// TypeInternal indicates everything else (exit 1)
	TypeInternal ErrorType = "internal"
)

// Error represents a structured error with type, message, and context.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit status for this error type.
func (e *Error) ExitCode() int {
	switch e.Type {
	case TypeInput:
		return 2
	case TypeExternal:
		return 3
	case TypeScoring:
		return 4
	default:
		return 1
	}
}

func newError(t ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    t,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// InputError creates a dataset error.
func InputError(message string, cause error) *Error {
	return newError(TypeInput, message, cause)
}

// ExternalError creates an external dependency error.
func ExternalError(message string, cause error) *Error {
	return newError(TypeExternal, message, cause)
}

// ScoringError creates a scoring error.
func ScoringError(message string, cause error) *Error {
	return newError(TypeScoring, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *Error {
	return newError(TypeInternal, message, cause)
}

// WithContext adds context fields to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithField is an alias for WithContext (chainable).
func (e *Error) WithField(key string, value any) *Error {
	return e.WithContext(key, value)
}

// LogAttrs flattens the error into slog key/value pairs, context keys sorted.
func (e *Error) LogAttrs() []any {
	attrs := []any{"error", e.Error(), "error_type", string(e.Type)}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, e.Context[k]))
	}
	return attrs
}

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error (or wraps one), returns it unchanged.
// Otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError("unexpected failure", err)
}
