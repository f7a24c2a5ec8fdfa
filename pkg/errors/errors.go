// Package errors provides structured error types for odsgen.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP service
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The normalization and resolution passes report one of the document
// error codes below; everything unexpected maps to INTERNAL_ERROR.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownStyle, "unknown style: %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownStyle) {
//	    // Handle missing style
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Document description errors
	ErrCodeInvalidDocumentShape Code = "INVALID_DOCUMENT_SHAPE"
	ErrCodeMissingField         Code = "MISSING_FIELD"
	ErrCodeUnknownStyle         Code = "UNKNOWN_STYLE"
	ErrCodeStyleConflict        Code = "STYLE_CONFLICT"
	ErrCodeInvalidSpan          Code = "INVALID_SPAN"
	ErrCodeSpanOutOfBounds      Code = "SPAN_OUT_OF_BOUNDS"
	ErrCodeInvalidStyle         Code = "INVALID_STYLE"

	// Input handling errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

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

// IsInputError reports whether err was caused by the input description
// rather than by the converter itself. The HTTP service uses this to pick
// between 400 and 500 responses.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidDocumentShape, ErrCodeMissingField, ErrCodeUnknownStyle,
		ErrCodeStyleConflict, ErrCodeInvalidSpan, ErrCodeSpanOutOfBounds,
		ErrCodeInvalidStyle, ErrCodeInvalidFormat:
		return true
	}
	return false
}
