package error

import "errors"

// Statement domain errors.
var (
	// ErrInvalidTargetCurrency is returned when the requested statement
	// currency is not CAD or USD.
	ErrInvalidTargetCurrency = errors.New("target currency must be CAD or USD")

	// ErrInvalidConversionRate is returned when the configured rate does not
	// parse to a positive number.
	ErrInvalidConversionRate = errors.New("conversion rate must be a positive number")

	// ErrStatementRender is returned when the document renderer fails.
	ErrStatementRender = errors.New("failed to render statement document")
)

// StatementErrorCode defines error codes for statement errors.
// Format: STM-XXYYYY where XX is category and YYYY is specific error.
type StatementErrorCode string

const (
	ErrCodeInvalidTargetCurrency StatementErrorCode = "STM-010001"
	ErrCodeInvalidConversionRate StatementErrorCode = "STM-010002"
	ErrCodeStatementRender       StatementErrorCode = "STM-020001"
)

// StatementError represents a statement error with code and message.
type StatementError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError with the given code and message.
func NewStatementError(code StatementErrorCode, message string, err error) *StatementError {
	return &StatementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
