package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an AppError and decides its HTTP status.
type ErrorType string

const (
	ErrorTypeNotFound    ErrorType = "NOT_FOUND"
	ErrorTypeValidation  ErrorType = "VALIDATION"
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE" // collaborator not configured or circuit open
	ErrorTypeExternal    ErrorType = "EXTERNAL"
	ErrorTypeInternal    ErrorType = "INTERNAL"
)

// HTTPStatus maps the type onto a response status. Unknown types are 500.
func (t ErrorType) HTTPStatus() int {
	switch t {
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorTypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AppError is an error with a type and a message safe to show to API clients.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(t ErrorType, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

// NewNotFoundError reports that nothing matched the request.
func NewNotFoundError(message string) *AppError {
	return newAppError(ErrorTypeNotFound, message, nil)
}

// NewNotFoundErrorWithCause keeps err reachable through errors.Is.
func NewNotFoundErrorWithCause(message string, err error) *AppError {
	return newAppError(ErrorTypeNotFound, message, err)
}

// NewValidationError rejects a malformed request.
func NewValidationError(message string) *AppError {
	return newAppError(ErrorTypeValidation, message, nil)
}

func NewUnavailableError(message string, err error) *AppError {
	return newAppError(ErrorTypeUnavailable, message, err)
}

func NewExternalError(message string, err error) *AppError {
	return newAppError(ErrorTypeExternal, message, err)
}

// TypeOf returns the type of the first AppError in err's chain, or ErrorTypeInternal.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// PublicMessage is the text an API client may see for err. Internal failures stay opaque.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type.HTTPStatus() != http.StatusInternalServerError {
		return appErr.Message
	}
	return "internal server error"
}
