package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an error for transport mapping
type ErrorType string

const (
	// Client errors
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"

	// Server errors
	ErrorTypeInternal ErrorType = "INTERNAL"
	ErrorTypeDatabase ErrorType = "DATABASE"
)

// Error codes carried alongside the type for more precise client handling
const (
	CodeSchemaViolation  = "SCHEMA_VIOLATION"
	CodeMissingQualifier = "MISSING_QUALIFIER"
	CodeInvalidParameter = "INVALID_PARAMETER"
)

// AppError is the application-wide error carrier. It maps onto an HTTP
// status but keeps the cause chain out of the response body.
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails attaches structured details to the error
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewSchemaViolationError reports a payload that failed the schema gate.
// The violated field names are carried in the details.
func NewSchemaViolationError(fields []string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       CodeSchemaViolation,
		Message:    "request body does not match the review schema",
		Details:    map[string]interface{}{"fields": fields},
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewMissingQualifierError reports an absent qualifier path segment
func NewMissingQualifierError() *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       CodeMissingQualifier,
		Message:    "reviewer name or year is required",
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidParameterError reports a request parameter that failed to parse
func NewInvalidParameterError(name, value string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       CodeInvalidParameter,
		Message:    fmt.Sprintf("invalid value %q for parameter %s", value, name),
		Details:    map[string]interface{}{"parameter": name},
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewValidationError creates a generic validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewStoreError wraps a store-level failure. The cause never reaches the
// response body.
func NewStoreError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeDatabase,
		Message:    fmt.Sprintf("store operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsUnauthorized checks if an error is an unauthorized error
func IsUnauthorized(err error) bool {
	return IsType(err, ErrorTypeUnauthorized)
}

// Wrap adds context to an error, preserving an existing AppError's type
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}
