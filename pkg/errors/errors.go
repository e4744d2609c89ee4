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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Matching errors. A trigger type outside the closed set is a caller bug
	// and aborts a run; pattern and template errors only degrade one field
	// or one trigger.
	ErrTriggerType     ErrorCode = "TRIGGER_TYPE_INVALID"
	ErrPatternInvalid  ErrorCode = "PATTERN_INVALID"
	ErrTemplateInvalid ErrorCode = "TEMPLATE_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// DocflowError represents a structured error with code and details
type DocflowError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DocflowError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DocflowError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DocflowError) Is(target error) bool {
	var targetErr *DocflowError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DocflowError with the given code and message
func New(code ErrorCode, message string) *DocflowError {
	return &DocflowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DocflowError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DocflowError {
	return &DocflowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DocflowError
func Wrap(err error, code ErrorCode, message string) *DocflowError {
	if err == nil {
		return nil
	}
	return &DocflowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DocflowError {
	if err == nil {
		return nil
	}
	return &DocflowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DocflowError) WithDetail(key string, value interface{}) *DocflowError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DocflowError) WithDetails(details map[string]interface{}) *DocflowError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var docflowErr *DocflowError
	if errors.As(err, &docflowErr) {
		return docflowErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DocflowError
func GetErrorCode(err error) ErrorCode {
	var docflowErr *DocflowError
	if errors.As(err, &docflowErr) {
		return docflowErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DocflowError
func GetErrorDetails(err error) map[string]interface{} {
	var docflowErr *DocflowError
	if errors.As(err, &docflowErr) {
		return docflowErr.Details
	}
	return nil
}
