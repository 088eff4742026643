package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// CreateRecurringInput represents the input for recurring transaction creation.
type CreateRecurringInput struct {
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
}

// CreateRecurringOutput represents the output of recurring transaction creation.
type CreateRecurringOutput struct {
	Transaction *RecurringOutput
}

// CreateRecurringUseCase handles recurring transaction creation.
type CreateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(recurringRepo adapter.RecurringRepository) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring transaction creation.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	if input.Name == "" || len(input.Name) > MaxNameLength {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxNameLength),
			nil,
		)
	}

	if err := validateRuleFields(input.Amount, input.Kind, input.Frequency, input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "CAD"
	}

	tx := entity.NewRecurringTransaction(
		input.UserID,
		input.Name,
		input.Amount,
		input.Kind,
		input.Frequency,
		input.StartDate,
		input.EndDate,
		input.Category,
		currency,
		input.IsActive,
	)

	if err := uc.recurringRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}

	return &CreateRecurringOutput{Transaction: toOutput(tx)}, nil
}
