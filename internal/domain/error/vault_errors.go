package error

import "errors"

// Corporate vault domain errors.
var (
	ErrBusinessEntityNotFound = errors.New("business entity not found")
	ErrDomainNotFound         = errors.New("domain not found")
	ErrEventNotFound          = errors.New("corporate event not found")
	ErrInvalidEventType       = errors.New("invalid event type")
	ErrMissingDomainName      = errors.New("domain name is required")
	ErrMissingEventTitle      = errors.New("event title is required")
	ErrMissingCompanyName     = errors.New("company name is required")
)

// VaultErrorCode defines error codes for corporate vault errors.
// Format: VLT-XXYYYY where XX is category and YYYY is specific error.
type VaultErrorCode string

const (
	ErrCodeMissingDomainName      VaultErrorCode = "VLT-010001"
	ErrCodeMissingEventTitle      VaultErrorCode = "VLT-010002"
	ErrCodeInvalidEventType       VaultErrorCode = "VLT-010003"
	ErrCodeMissingCompanyName     VaultErrorCode = "VLT-010004"
	ErrCodeBusinessEntityNotFound VaultErrorCode = "VLT-010005"
	ErrCodeDomainNotFound         VaultErrorCode = "VLT-010006"
	ErrCodeEventNotFound          VaultErrorCode = "VLT-010007"
)

// VaultError represents a corporate vault error with code and message.
type VaultError struct {
	Code    VaultErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VaultError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VaultError) Unwrap() error {
	return e.Err
}

// NewVaultError creates a new VaultError with the given code and message.
func NewVaultError(code VaultErrorCode, message string, err error) *VaultError {
	return &VaultError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
