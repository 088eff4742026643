package error

import "errors"

// Recurring transaction domain errors.
var (
	// ErrRecurringNotFound is returned when a recurring transaction is not found.
	ErrRecurringNotFound = errors.New("recurring transaction not found")

	// ErrInvalidRecurringKind is returned when the kind is not income or expense.
	ErrInvalidRecurringKind = errors.New("invalid recurring transaction kind")

	// ErrInvalidFrequency is returned when the frequency is not one of the
	// five supported values.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidRecurringAmount is returned when the amount is negative.
	ErrInvalidRecurringAmount = errors.New("amount must be non-negative")

	// ErrEndBeforeStart is returned when end_date precedes start_date.
	ErrEndBeforeStart = errors.New("end_date must not be before start_date")

	// ErrInvalidWindow is returned when a projection window is malformed.
	ErrInvalidWindow = errors.New("window end must not be before window start")
)

// RecurringErrorCode defines error codes for recurring transaction errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	ErrCodeInvalidRecurringKind   RecurringErrorCode = "REC-010001"
	ErrCodeInvalidFrequency       RecurringErrorCode = "REC-010002"
	ErrCodeInvalidRecurringAmount RecurringErrorCode = "REC-010003"
	ErrCodeEndBeforeStart         RecurringErrorCode = "REC-010004"
	ErrCodeInvalidWindow          RecurringErrorCode = "REC-010005"
	ErrCodeRecurringNotFound      RecurringErrorCode = "REC-010006"
	ErrCodeMissingRecurringFields RecurringErrorCode = "REC-010007"
	ErrCodeInvalidRecurringDate   RecurringErrorCode = "REC-010008"
)

// RecurringError represents a recurring transaction error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
