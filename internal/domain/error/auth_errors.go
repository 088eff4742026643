// Package error defines domain-specific errors for the Ledgerline application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrMissingToken is returned when no bearer token is present.
	ErrMissingToken = errors.New("authorization token missing")

	// ErrInvalidToken is returned when the bearer token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrNotAllowListed is returned when an authenticated identity is not on
	// the configured allow-list.
	ErrNotAllowListed = errors.New("identity not authorized for this dashboard")

	// ErrRateLimited is returned when a client exceeds the request budget.
	ErrRateLimited = errors.New("too many requests")
)

// AuthErrorCode defines error codes for authentication and authorization
// errors. Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken   AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken   AuthErrorCode = "AUTH-010002"
	ErrCodeNotAllowListed AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited    AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
