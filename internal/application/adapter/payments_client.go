package adapter

import (
	"context"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// ListParams bounds a payments API listing. Created bounds are unix seconds;
// zero values mean unbounded. Limit of 0 uses the client default.
type ListParams struct {
	Limit      int
	CreatedGTE int64
	CreatedLTE int64
}

// PaymentsClient defines the interface to the payment processor API.
// Amounts are minor units and timestamps unix seconds, as the processor
// reports them.
type PaymentsClient interface {
	GetBalance(ctx context.Context) (*entity.Balance, error)
	GetCharges(ctx context.Context, params ListParams) ([]entity.Charge, error)
	GetPayouts(ctx context.Context, params ListParams) ([]entity.Payout, error)
	GetBalanceTransactions(ctx context.Context, params ListParams) ([]entity.BalanceTransaction, error)
}
