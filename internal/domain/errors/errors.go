// Package errors defines the application-level error taxonomy. Every failure
// that is translated into a caller-visible HTTP response is one of these;
// everything else propagates untouched for the deployment layer to handle.
package errors

import (
	"net/http"

	"stepwise/internal/errors"
)

// AppError is the contract between the domain/usecase layers and the HTTP
// error handler: an error that knows its status code and user-facing message.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error values. The message strings are part of the wire contract
// and asserted by tests; do not reword them.
var (
	// Registration-time conflicts. Email is checked before username, and the
	// same two errors cover the store winning a registration race.
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"Email already registered",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username already taken",
	)

	// ErrInvalidCredentials is surfaced uniformly for both an unknown
	// username and a wrong password. Keeping the two cases indistinguishable
	// is an anti-enumeration measure; do not split them.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect username or password",
	)

	// ErrUnauthenticated covers every bearer-token failure on protected
	// routes: malformed, tampered, expired, or subject no longer present.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Could not validate credentials",
	)

	// ErrNotAuthenticated is the missing/garbled Authorization header case.
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Not authenticated",
	)

	ErrProblemNotFound = NewBaseError(
		http.StatusNotFound,
		"PROBLEM_NOT_FOUND",
		"Problem not found",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request payload",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)
