// Package patherrors defines the structured errors shared by the path
// engine, the filesystem wrapper, and the CLI.
package patherrors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Pure path errors
	ErrNotRelative      ErrorCode = "NOT_RELATIVE"
	ErrNotAbsolute      ErrorCode = "NOT_ABSOLUTE"
	ErrFlavorMismatch   ErrorCode = "FLAVOR_MISMATCH"
	ErrMalformedPattern ErrorCode = "MALFORMED_PATTERN"
	ErrUnsupported      ErrorCode = "UNSUPPORTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// PathError represents a structured error with code and details
type PathError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathError) Is(target error) bool {
	var targetErr *PathError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathError with the given code and message
func New(code ErrorCode, message string) *PathError {
	return &PathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathError {
	return &PathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathError
func Wrap(err error, code ErrorCode, message string) *PathError {
	if err == nil {
		return nil
	}
	return &PathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathError {
	if err == nil {
		return nil
	}
	return &PathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathError) WithDetail(key string, value interface{}) *PathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathError
func GetErrorCode(err error) ErrorCode {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Code
	}
	return ErrUnknown
}
