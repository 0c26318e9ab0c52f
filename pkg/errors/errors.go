package errors

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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Workspace errors
	ErrNoWorkspace ErrorCode = "NO_WORKSPACE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Interaction errors
	ErrPrompt ErrorCode = "PROMPT"
	ErrOpen   ErrorCode = "OPEN"

	// FileSystem errors
	ErrDirList   ErrorCode = "DIR_LIST"
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// EasyFileError represents a structured error with code and details
type EasyFileError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EasyFileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EasyFileError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EasyFileError) Is(target error) bool {
	var targetErr *EasyFileError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EasyFileError with the given code and message
func New(code ErrorCode, message string) *EasyFileError {
	return &EasyFileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EasyFileError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EasyFileError {
	return &EasyFileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EasyFileError
func Wrap(err error, code ErrorCode, message string) *EasyFileError {
	if err == nil {
		return nil
	}
	return &EasyFileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EasyFileError {
	if err == nil {
		return nil
	}
	return &EasyFileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EasyFileError) WithDetail(key string, value interface{}) *EasyFileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var efErr *EasyFileError
	if errors.As(err, &efErr) {
		return efErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EasyFileError
func GetErrorCode(err error) ErrorCode {
	var efErr *EasyFileError
	if errors.As(err, &efErr) {
		return efErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EasyFileError
func GetErrorDetails(err error) map[string]interface{} {
	var efErr *EasyFileError
	if errors.As(err, &efErr) {
		return efErr.Details
	}
	return nil
}
