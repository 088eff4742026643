package recurring

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for recurring transaction names.
const MaxNameLength = 255

// RecurringOutput represents a recurring transaction in use case outputs.
type RecurringOutput struct {
	ID        uuid.UUID
	UserID    string
	Name      string
	Amount    int64
	Kind      entity.RecurringKind
	Frequency entity.Frequency
	StartDate time.Time
	EndDate   *time.Time
	Category  string
	Currency  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toOutput(tx *entity.RecurringTransaction) *RecurringOutput {
	return &RecurringOutput{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Name:      tx.Name,
		Amount:    tx.Amount,
		Kind:      tx.Kind,
		Frequency: tx.Frequency,
		StartDate: tx.StartDate,
		EndDate:   tx.EndDate,
		Category:  tx.Category,
		Currency:  tx.Currency,
		IsActive:  tx.IsActive,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

// validateRuleFields checks the invariants shared by create and update.
func validateRuleFields(amount int64, kind entity.RecurringKind, frequency entity.Frequency, startDate time.Time, endDate *time.Time) error {
	if amount < 0 {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"amount must be non-negative",
			domainerror.ErrInvalidRecurringAmount,
		)
	}

	if !entity.ValidRecurringKind(kind) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringKind,
			"kind must be 'income' or 'expense'",
			domainerror.ErrInvalidRecurringKind,
		)
	}

	if !entity.ValidFrequency(frequency) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be: daily, weekly, biweekly, monthly, or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	if endDate != nil && endDate.Before(startDate) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeEndBeforeStart,
			"end_date must not be before start_date",
			domainerror.ErrEndBeforeStart,
		)
	}

	return nil
}
