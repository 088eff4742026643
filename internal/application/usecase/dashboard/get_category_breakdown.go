package dashboard

import (
	"context"
	"time"

	"github.com/ledgerline/backend/internal/application/adapter"
)

// GetCategoryBreakdownInput represents the input for the category breakdown
// query.
type GetCategoryBreakdownInput struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
}

// GetCategoryBreakdownOutput represents the output of the category breakdown
// query, largest total first.
type GetCategoryBreakdownOutput struct {
	Categories []CategoryTotal
}

// GetCategoryBreakdownUseCase totals ledger activity per category label.
type GetCategoryBreakdownUseCase struct {
	paymentsClient  adapter.PaymentsClient
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	paymentsClient adapter.PaymentsClient,
	transactionRepo adapter.TransactionRepository,
) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		paymentsClient:  paymentsClient,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the category breakdown query.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	window, err := validateWindow(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	events, err := loadLedgerEvents(ctx, uc.paymentsClient, uc.transactionRepo, input.UserID, window)
	if err != nil {
		return nil, err
	}

	return &GetCategoryBreakdownOutput{Categories: AggregateByCategory(events)}, nil
}
