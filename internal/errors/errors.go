// Package errors defines coded errors for all of read-you's failure modes.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ConfigMissing indicates no configuration file was found in any search location
	ConfigMissing ErrorCode = "CONFIG_MISSING"
	// ConfigInvalid indicates a configuration file exists but could not be parsed
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// APIKeyInvalid indicates the API key is absent or still a placeholder
	APIKeyInvalid ErrorCode = "API_KEY_INVALID"
	// NoSourceFiles indicates the scan found no recognized source files
	NoSourceFiles ErrorCode = "NO_SOURCE_FILES"
	// GenerationFailed indicates the generation backend call failed
	GenerationFailed ErrorCode = "GENERATION_FAILED"
	// WriteFailed indicates the README could not be written
	WriteFailed ErrorCode = "WRITE_FAILED"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error is a read-you error with a stable code, message, and optional
// user-facing hint for fixing the problem.
type Error struct {
	Code    ErrorCode
	Message string
	Hint    string
	cause   error
}

// New creates a coded error without an underlying cause.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error around an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// WithHint attaches a suggestion shown alongside the error message.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf extracts the error code from err, or InternalError if err carries none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return InternalError
}

// HintOf extracts the hint from err, or "" if err carries none.
func HintOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Hint
	}
	return ""
}
