package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// Constructors for the error taxonomy. Handlers map every failure through one
// of these before it reaches the response boundary.

func Validation(message string, err error) *AppError {
	return NewAppError(message, message, ErrCodeValidation, http.StatusBadRequest, err)
}

func Unauthorized(technical string) *AppError {
	return NewAppError(technical, MsgUnauthorized, ErrCodeUnauthorized, http.StatusUnauthorized, nil)
}

func Forbidden() *AppError {
	return NewAppError("principal lacks permission for this action", MsgForbidden, ErrCodeForbidden, http.StatusForbidden, nil)
}

func NotFound(resource string) *AppError {
	return NewAppError(resource+" not found", MsgNotFound, ErrCodeNotFound, http.StatusNotFound, nil)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(message, message, ErrCodeConflict, http.StatusBadRequest, err)
}

func Internal(err error) *AppError {
	technical := "internal error"
	if err != nil {
		technical = err.Error()
	}
	return NewAppError(technical, MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
}
