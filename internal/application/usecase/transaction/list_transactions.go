package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/backend/internal/application/adapter"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing manual transactions.
// Nil date bounds leave that side of the range open.
type ListTransactionsInput struct {
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
}

// ListTransactionsOutput represents the output of listing manual transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles manual transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the manual transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"end_date must not be before start_date",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make([]*TransactionOutput, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, toOutput(tx))
	}

	return &ListTransactionsOutput{Transactions: out}, nil
}
