package mock

import (
	"context"
	"sync"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// Payments is an in-memory payments client stub. Scenarios load it with
// fixture data; setting Unavailable makes every call fail with an upstream
// error.
type Payments struct {
	mu sync.Mutex

	Balance             *entity.Balance
	Charges             []entity.Charge
	Payouts             []entity.Payout
	BalanceTransactions []entity.BalanceTransaction
	Unavailable         bool
}

// NewPayments creates an empty payments stub.
func NewPayments() *Payments {
	return &Payments{}
}

// Reset clears all fixture data between scenarios.
func (p *Payments) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Balance = nil
	p.Charges = nil
	p.Payouts = nil
	p.BalanceTransactions = nil
	p.Unavailable = false
}

// AddCharge appends a charge fixture.
func (p *Payments) AddCharge(c entity.Charge) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Charges = append(p.Charges, c)
}

func (p *Payments) err() error {
	return domainerror.NewPaymentsError(
		domainerror.ErrCodePaymentsUpstream,
		"payments API unavailable",
		domainerror.ErrPaymentsUnavailable,
	)
}

// GetBalance returns the fixture balance.
func (p *Payments) GetBalance(ctx context.Context) (*entity.Balance, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Unavailable {
		return nil, p.err()
	}
	if p.Balance == nil {
		return &entity.Balance{}, nil
	}
	return p.Balance, nil
}

// GetCharges returns fixture charges within the created window.
func (p *Payments) GetCharges(ctx context.Context, params adapter.ListParams) ([]entity.Charge, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Unavailable {
		return nil, p.err()
	}
	var out []entity.Charge
	for _, c := range p.Charges {
		if params.CreatedGTE != 0 && c.Created < params.CreatedGTE {
			continue
		}
		if params.CreatedLTE != 0 && c.Created > params.CreatedLTE {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// GetPayouts returns the fixture payouts.
func (p *Payments) GetPayouts(ctx context.Context, params adapter.ListParams) ([]entity.Payout, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Unavailable {
		return nil, p.err()
	}
	return p.Payouts, nil
}

// GetBalanceTransactions returns the fixture balance transactions.
func (p *Payments) GetBalanceTransactions(ctx context.Context, params adapter.ListParams) ([]entity.BalanceTransaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Unavailable {
		return nil, p.err()
	}
	return p.BalanceTransactions, nil
}
