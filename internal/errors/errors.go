package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingKey    = errors.New("key not present in document")
	ErrShortWrite    = errors.New("short write")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeBuild   ErrorType = "build"
	ErrorTypeEncode  ErrorType = "encode"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewConfigError creates a new error related to loading configuration
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewBuildError creates a new error related to building the document
func NewBuildError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeBuild,
		Message: message,
		Err:     err,
	}
}

// NewEncodeError creates a new error related to JSON serialization
func NewEncodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeEncode,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeBuild:
			return fmt.Sprintf("Document error: %s", appErr.Message)
		case ErrorTypeEncode:
			return fmt.Sprintf("JSON encoding error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if errors.Is(err, ErrInvalidConfig) {
		return "Error: The built-in configuration is invalid."
	}
	if errors.Is(err, ErrMissingKey) {
		return "Error: The requested key is not present in the document."
	}
	if errors.Is(err, ErrShortWrite) {
		return "Error: Output was truncated."
	}

	return fmt.Sprintf("Error: %v", err)
}
