package recurring

import (
	"context"
	"fmt"

	"github.com/ledgerline/backend/internal/application/adapter"
)

// ListRecurringInput represents the input for listing recurring transactions.
type ListRecurringInput struct {
	UserID string
}

// ListRecurringOutput represents the output of listing recurring transactions.
type ListRecurringOutput struct {
	Transactions []*RecurringOutput
}

// ListRecurringUseCase handles listing an owner's recurring transactions.
type ListRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(recurringRepo adapter.RecurringRepository) *ListRecurringUseCase {
	return &ListRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute retrieves all recurring transactions for the owner, newest first.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, input ListRecurringInput) (*ListRecurringOutput, error) {
	transactions, err := uc.recurringRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}

	out := make([]*RecurringOutput, len(transactions))
	for i, tx := range transactions {
		out[i] = toOutput(tx)
	}

	return &ListRecurringOutput{Transactions: out}, nil
}
