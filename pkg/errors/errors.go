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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// A required environment variable or input is missing
	ErrConfiguration ErrorCode = "CONFIGURATION"

	// A file command or summary target does not exist or cannot be opened
	ErrResource ErrorCode = "RESOURCE"

	// A value does not have the expected shape
	ErrValidation ErrorCode = "VALIDATION"
)

// Exit codes handed to the process when a step terminates.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// StepkitError represents a structured error with code and details
type StepkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StepkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StepkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StepkitError) Is(target error) bool {
	var targetErr *StepkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StepkitError with the given code and message
func New(code ErrorCode, message string) *StepkitError {
	return &StepkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StepkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StepkitError {
	return &StepkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StepkitError
func Wrap(err error, code ErrorCode, message string) *StepkitError {
	if err == nil {
		return nil
	}
	return &StepkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StepkitError {
	if err == nil {
		return nil
	}
	return &StepkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StepkitError) WithDetail(key string, value interface{}) *StepkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stepErr *StepkitError
	if errors.As(err, &stepErr) {
		return stepErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StepkitError
func GetErrorCode(err error) ErrorCode {
	var stepErr *StepkitError
	if errors.As(err, &stepErr) {
		return stepErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StepkitError
func GetErrorDetails(err error) map[string]interface{} {
	var stepErr *StepkitError
	if errors.As(err, &stepErr) {
		return stepErr.Details
	}
	return nil
}
