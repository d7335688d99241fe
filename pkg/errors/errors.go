// Package errors provides structured error types for relaxicons.
//
// Every failure the icon pipeline can surface carries a machine-readable
// [Code]. The CLI maps codes to exit statuses and the batch runner uses them
// to decide whether a failure is per-item (the batch continues) or fatal for
// the whole invocation.
//
// # Error Codes
//
//   - CONFIG_*: configuration discovery and validation
//   - IDENTIFIER_MALFORMED: an icon id that is not collection:name
//   - *_NOT_FOUND: registry answered 404
//   - FETCH_FAILED, UNEXPECTED_PAYLOAD: transport or payload problems
//   - PARSE_ERROR: source is not a vector document
//   - DESTINATION_EXISTS: output file present and overwrite not requested
//   - TEMPLATE_INVALID: a user override template could not be used
//
// # Usage
//
//	err := errors.New(errors.ErrCodeIconNotFound, "icon %s not found", id)
//	if errors.Is(err, errors.ErrCodeIconNotFound) {
//	    // offer suggestions
//	}
//
//	// Carry the HTTP status of a failed fetch
//	err := errors.WithStatus(errors.ErrCodeFetchFailed, 503, "fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeConfigMissing Code = "CONFIG_MISSING"
	ErrCodeConfigInvalid Code = "CONFIG_INVALID"

	// Input errors
	ErrCodeInvalidInput        Code = "INVALID_INPUT"
	ErrCodeIdentifierMalformed Code = "IDENTIFIER_MALFORMED"

	// Registry errors
	ErrCodeCollectionNotFound Code = "COLLECTION_NOT_FOUND"
	ErrCodeIconNotFound       Code = "ICON_NOT_FOUND"
	ErrCodeFetchFailed        Code = "FETCH_FAILED"
	ErrCodeUnexpectedPayload  Code = "UNEXPECTED_PAYLOAD"

	// Generation errors
	ErrCodeParse             Code = "PARSE_ERROR"
	ErrCodeDestinationExists Code = "DESTINATION_EXISTS"
	ErrCodeTemplateInvalid   Code = "TEMPLATE_INVALID"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Status  int    // HTTP status for FETCH_FAILED, zero otherwise
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
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

// WithStatus creates a new Error that records the HTTP status of a failed
// request.
func WithStatus(code Code, status int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
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

// StatusOf returns the HTTP status recorded on err, or zero.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Status != 0 {
			return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
		}
		return e.Message
	}
	return err.Error()
}

// IsFatal reports whether err must abort a whole invocation rather than a
// single batch item.
func IsFatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeConfigMissing, ErrCodeConfigInvalid, ErrCodeIdentifierMalformed:
		return true
	}
	return false
}
