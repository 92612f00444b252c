package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the closed docstow taxonomy. All of these are terminal:
// nothing is retried internally.
const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Directory resolution errors
	ErrDocumentsFolderNotFound ErrorCode = "DOCUMENTS_FOLDER_NOT_FOUND"
	ErrCachesFolderNotFound    ErrorCode = "CACHES_FOLDER_NOT_FOUND"
	ErrCloudContainerNotFound  ErrorCode = "CLOUD_CONTAINER_NOT_FOUND"

	// Persistence errors
	ErrUnableToPersist ErrorCode = "UNABLE_TO_PERSIST"
	ErrUnableToFetch   ErrorCode = "UNABLE_TO_FETCH"

	// ErrFailed is the opaque wrapper around an underlying host I/O failure
	ErrFailed ErrorCode = "FAILED"
)

// StoreError represents a structured error with code and details
type StoreError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StoreError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StoreError) Is(target error) bool {
	var targetErr *StoreError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StoreError with the given code and message
func New(code ErrorCode, message string) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StoreError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StoreError {
	return &StoreError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StoreError
func Wrap(err error, code ErrorCode, message string) *StoreError {
	if err == nil {
		return nil
	}
	return &StoreError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StoreError {
	if err == nil {
		return nil
	}
	return &StoreError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StoreError) WithDetail(key string, value interface{}) *StoreError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StoreError
func GetErrorCode(err error) ErrorCode {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StoreError
func GetErrorDetails(err error) map[string]interface{} {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Details
	}
	return nil
}
