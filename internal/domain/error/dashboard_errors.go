package error

import "errors"

// Dashboard domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date precedes start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidGranularity is returned when the group-by value is unknown.
	ErrInvalidGranularity = errors.New("granularity must be: day, week, or month")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	ErrCodeMissingStartDate   DashboardErrorCode = "DSH-010001"
	ErrCodeMissingEndDate     DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidDateRange   DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidGranularity DashboardErrorCode = "DSH-010004"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
