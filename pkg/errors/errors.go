package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies the category of an application error.
type ErrorCode int

const (
	ErrValidation ErrorCode = iota + 1000
	ErrAuthentication
	ErrAuthorization
	ErrConflict
	ErrNotFound
	ErrInternal
)

// AppError is the error type returned by services. Handlers map it to an
// HTTP status via StatusCode.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// Error returns the message alone; for Internal errors the message already
// carries the underlying cause.
func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrAuthentication:
		return http.StatusUnauthorized
	case ErrAuthorization:
		return http.StatusForbidden
	case ErrConflict:
		return http.StatusConflict
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

func Authentication(message string) *AppError {
	return &AppError{Code: ErrAuthentication, Message: message}
}

func Authorization(message string) *AppError {
	return &AppError{Code: ErrAuthorization, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Code: ErrConflict, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Internal wraps a datastore or other unexpected fault. The underlying
// message is surfaced to the client, matching the original contract.
func Internal(err error) *AppError {
	return &AppError{Code: ErrInternal, Message: err.Error(), Err: err}
}

// Status returns the HTTP status for any error, defaulting to 500 for
// errors outside the taxonomy.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
