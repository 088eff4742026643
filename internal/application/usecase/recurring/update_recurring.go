package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// UpdateRecurringInput represents the input for updating a recurring
// transaction. Nil pointers leave the corresponding field unchanged;
// ClearEndDate removes an existing end date.
type UpdateRecurringInput struct {
	UserID       string
	ID           uuid.UUID
	Name         *string
	Amount       *int64
	Kind         *entity.RecurringKind
	Frequency    *entity.Frequency
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Category     *string
	Currency     *string
	IsActive     *bool
}

// UpdateRecurringOutput represents the output of a recurring transaction update.
type UpdateRecurringOutput struct {
	Transaction *RecurringOutput
}

// UpdateRecurringUseCase handles recurring transaction updates, including
// the active toggle.
type UpdateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewUpdateRecurringUseCase creates a new UpdateRecurringUseCase instance.
func NewUpdateRecurringUseCase(recurringRepo adapter.RecurringRepository) *UpdateRecurringUseCase {
	return &UpdateRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring transaction update.
func (uc *UpdateRecurringUseCase) Execute(ctx context.Context, input UpdateRecurringInput) (*UpdateRecurringOutput, error) {
	tx, err := uc.recurringRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringNotFound,
				"recurring transaction not found",
				domainerror.ErrRecurringNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recurring transaction: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > MaxNameLength {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringFields,
				fmt.Sprintf("name is required and must not exceed %d characters", MaxNameLength),
				nil,
			)
		}
		tx.Name = *input.Name
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Kind != nil {
		tx.Kind = *input.Kind
	}
	if input.Frequency != nil {
		tx.Frequency = *input.Frequency
	}
	if input.StartDate != nil {
		tx.StartDate = *input.StartDate
	}
	if input.ClearEndDate {
		tx.EndDate = nil
	} else if input.EndDate != nil {
		tx.EndDate = input.EndDate
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}
	if input.Currency != nil {
		tx.Currency = *input.Currency
	}
	if input.IsActive != nil {
		tx.IsActive = *input.IsActive
	}

	if err := validateRuleFields(tx.Amount, tx.Kind, tx.Frequency, tx.StartDate, tx.EndDate); err != nil {
		return nil, err
	}

	tx.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update recurring transaction: %w", err)
	}

	return &UpdateRecurringOutput{Transaction: toOutput(tx)}, nil
}
