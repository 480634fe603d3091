// Package errors provides structured error types for the diagrid engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Schema/input validation failures (malformed input)
//   - NOT_FOUND_*: Referenced element not found in current state
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeShapeNotFound, "no shape with id %q", id)
//	if errors.Is(err, errors.ErrCodeShapeNotFound) {
//	    // Handle missing shape
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDiagram, origErr, "parse diagram")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Schema validation errors (malformed input)
	ErrCodeInvalidDiagram   Code = "INVALID_DIAGRAM"
	ErrCodeInvalidShape     Code = "INVALID_SHAPE"
	ErrCodeInvalidConnector Code = "INVALID_CONNECTOR"
	ErrCodeInvalidSettings  Code = "INVALID_SETTINGS"
	ErrCodeInvalidKind      Code = "INVALID_KIND"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Element not found errors
	ErrCodeShapeNotFound     Code = "NOT_FOUND_SHAPE"
	ErrCodeConnectorNotFound Code = "NOT_FOUND_CONNECTOR"
	ErrCodeFileNotFound      Code = "NOT_FOUND_FILE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsMalformed reports whether err is any schema validation failure
// (one of the INVALID_* codes).
func IsMalformed(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidDiagram, ErrCodeInvalidShape, ErrCodeInvalidConnector,
		ErrCodeInvalidSettings, ErrCodeInvalidKind, ErrCodeInvalidPath:
		return true
	}
	return false
}

// IsNotFound reports whether err is any missing-element failure
// (one of the NOT_FOUND_* codes).
func IsNotFound(err error) bool {
	switch GetCode(err) {
	case ErrCodeShapeNotFound, ErrCodeConnectorNotFound, ErrCodeFileNotFound:
		return true
	}
	return false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
