// Package errors provides coded domain errors for the swatch palette engine.
//
// Usage:
//
//	// At the boundary - return typed errors
//	if !valid {
//	    return errors.InvalidColorf("invalid seed %q", seed)
//	}
//
//	// In callers - check with errors.Is
//	if errors.Is(err, errors.ErrInvalidColor) {
//	    os.Exit(errors.CodeInvalidColor.ExitCode())
//	}
//
//	// Or use the Code directly for switch statements
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    switch domainErr.Code {
//	    case errors.CodeValidation:
//	        printFieldErrors(domainErr.Details)
//	    }
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the engine.
const (
	CodeInvalidColor Code = "INVALID_COLOR"
	CodeInvalidLevel Code = "INVALID_LEVEL"
	CodeValidation   Code = "VALIDATION"
	CodeInternal     Code = "INTERNAL"
)

// Exit codes reported by command-line consumers.
const (
	exitInternal = 1
	exitUsage    = 2
)

// ExitCode returns the process exit status a tool should use for this code.
// Input problems map to the conventional usage status.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidColor, CodeInvalidLevel, CodeValidation:
		return exitUsage
	default:
		return exitInternal
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// ExitCode returns the exit status for this error.
func (e *Error) ExitCode() int {
	return e.Code.ExitCode()
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrInvalidColor = &Error{Code: CodeInvalidColor, Message: "invalid color"}
	ErrInvalidLevel = &Error{Code: CodeInvalidLevel, Message: "invalid accessibility level"}
	ErrValidation   = &Error{Code: CodeValidation, Message: "validation error"}
	ErrInternal     = &Error{Code: CodeInternal, Message: "internal error"}
)

// InvalidColor creates an invalid color error.
func InvalidColor(msg string) *Error {
	return &Error{Code: CodeInvalidColor, Message: msg}
}

// InvalidColorf creates an invalid color error with formatted message.
func InvalidColorf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidColor, Message: fmt.Sprintf(format, args...)}
}

// InvalidLevelf creates an invalid level error with formatted message.
func InvalidLevelf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidLevel, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// ExitCode returns the exit status for any error. Non-domain errors are
// treated as internal failures.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.ExitCode()
	}
	return exitInternal
}
