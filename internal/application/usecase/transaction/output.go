// Package transaction contains use cases for manually entered bookkeeping
// records.
package transaction

import (
	"time"

	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// TransactionOutput is the use case view of a manual transaction.
type TransactionOutput struct {
	ID              string
	Amount          int64
	Currency        string
	Type            entity.ManualTransactionType
	Category        string
	Description     string
	TransactionDate time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toOutput(tx *entity.ManualTransaction) *TransactionOutput {
	return &TransactionOutput{
		ID:              tx.ID.String(),
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		Type:            tx.Type,
		Category:        tx.Category,
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate,
		Notes:           tx.Notes,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

func validateTransactionFields(amount int64, txType entity.ManualTransactionType, category string, date time.Time) error {
	if amount < 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be non-negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !entity.ValidManualTransactionType(txType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be: income, expense, adjustment, royalty, or transfer",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return nil
}
