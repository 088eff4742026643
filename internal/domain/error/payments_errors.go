package error

import "errors"

// Payments upstream errors.
var (
	// ErrPaymentsUnavailable is returned when the payments API cannot be
	// reached after retries are exhausted.
	ErrPaymentsUnavailable = errors.New("payments service unavailable")

	// ErrPaymentsNotConfigured is returned when no API key is configured.
	ErrPaymentsNotConfigured = errors.New("payments API key not configured")
)

// PaymentsErrorCode defines error codes for payments upstream failures.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentsErrorCode string

const (
	ErrCodePaymentsNotConfigured PaymentsErrorCode = "PAY-010001"
	ErrCodePaymentsUpstream      PaymentsErrorCode = "PAY-020001"
)

// PaymentsError represents a payments upstream error with code and message.
type PaymentsError struct {
	Code    PaymentsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentsError) Unwrap() error {
	return e.Err
}

// NewPaymentsError creates a new PaymentsError with the given code and message.
func NewPaymentsError(code PaymentsErrorCode, message string, err error) *PaymentsError {
	return &PaymentsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
