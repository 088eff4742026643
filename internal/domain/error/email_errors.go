package error

import "errors"

// Email delivery errors.
var (
	// ErrPermanentEmailFailure indicates the send will never succeed
	// (bad address, rejected content) and must not be retried.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure indicates a transient delivery problem.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode defines error codes for email delivery errors.
type EmailErrorCode string

const (
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020001"
)

// EmailError represents an email delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
