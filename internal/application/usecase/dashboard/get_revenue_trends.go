package dashboard

import (
	"context"
	"time"

	"github.com/ledgerline/backend/internal/application/adapter"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// GetRevenueTrendsInput represents the input for the revenue trend query.
type GetRevenueTrendsInput struct {
	UserID      string
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// GetRevenueTrendsOutput represents the output of the revenue trend query.
type GetRevenueTrendsOutput struct {
	Buckets []PeriodBucket
}

// GetRevenueTrendsUseCase groups processor and manual activity into period
// buckets for the trend chart.
type GetRevenueTrendsUseCase struct {
	paymentsClient  adapter.PaymentsClient
	transactionRepo adapter.TransactionRepository
}

// NewGetRevenueTrendsUseCase creates a new GetRevenueTrendsUseCase instance.
func NewGetRevenueTrendsUseCase(
	paymentsClient adapter.PaymentsClient,
	transactionRepo adapter.TransactionRepository,
) *GetRevenueTrendsUseCase {
	return &GetRevenueTrendsUseCase{
		paymentsClient:  paymentsClient,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the revenue trend query.
func (uc *GetRevenueTrendsUseCase) Execute(ctx context.Context, input GetRevenueTrendsInput) (*GetRevenueTrendsOutput, error) {
	window, err := validateWindow(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if !ValidGranularity(input.Granularity) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: day, week, or month",
			domainerror.ErrInvalidGranularity,
		)
	}

	events, err := loadLedgerEvents(ctx, uc.paymentsClient, uc.transactionRepo, input.UserID, window)
	if err != nil {
		return nil, err
	}

	buckets, err := AggregateByPeriod(events, input.Granularity)
	if err != nil {
		return nil, err
	}

	return &GetRevenueTrendsOutput{Buckets: buckets}, nil
}
