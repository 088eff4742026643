// Package adapters implements application adapter interfaces backed by
// external services.
package adapters

import (
	"context"
	"time"

	"github.com/avast/retry-go"
	stripe "github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// StripeClient implements the adapter.PaymentsClient interface against the
// Stripe API. Transient failures are retried with backoff before an upstream
// error is surfaced.
type StripeClient struct {
	api        *stripeclient.API
	maxRetries uint
	baseWait   time.Duration
}

// StripeClientConfig holds Stripe client configuration.
type StripeClientConfig struct {
	SecretKey     string
	MaxRetries    int
	RetryBaseWait time.Duration
}

// NewStripeClient creates a new Stripe-backed payments client. An empty
// secret key yields a client whose calls fail with a configuration error,
// so the rest of the application still works without Stripe.
func NewStripeClient(cfg StripeClientConfig) *StripeClient {
	c := &StripeClient{
		maxRetries: uint(cfg.MaxRetries),
		baseWait:   cfg.RetryBaseWait,
	}
	if c.maxRetries == 0 {
		c.maxRetries = 3
	}
	if c.baseWait == 0 {
		c.baseWait = 500 * time.Millisecond
	}
	if cfg.SecretKey != "" {
		c.api = &stripeclient.API{}
		c.api.Init(cfg.SecretKey, nil)
	}
	return c
}

func (c *StripeClient) notConfigured() error {
	return domainerror.NewPaymentsError(
		domainerror.ErrCodePaymentsNotConfigured,
		"payments API key not configured",
		domainerror.ErrPaymentsNotConfigured,
	)
}

func (c *StripeClient) upstream(err error) error {
	return domainerror.NewPaymentsError(
		domainerror.ErrCodePaymentsUpstream,
		"payments service unavailable",
		err,
	)
}

// withRetry runs fn with backoff until it succeeds or attempts run out.
func (c *StripeClient) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		fn,
		retry.Attempts(c.maxRetries),
		retry.Delay(c.baseWait),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
}

func listParams(params adapter.ListParams) stripe.ListParams {
	lp := stripe.ListParams{}
	if params.Limit > 0 {
		lp.Limit = stripe.Int64(int64(params.Limit))
	}
	return lp
}

func createdRange(params adapter.ListParams) *stripe.RangeQueryParams {
	if params.CreatedGTE == 0 && params.CreatedLTE == 0 {
		return nil
	}
	r := &stripe.RangeQueryParams{}
	if params.CreatedGTE != 0 {
		r.GreaterThanOrEqual = params.CreatedGTE
	}
	if params.CreatedLTE != 0 {
		r.LesserThanOrEqual = params.CreatedLTE
	}
	return r
}

// GetBalance fetches the current account balance.
func (c *StripeClient) GetBalance(ctx context.Context) (*entity.Balance, error) {
	if c.api == nil {
		return nil, c.notConfigured()
	}

	var bal *stripe.Balance
	err := c.withRetry(ctx, func() error {
		var err error
		bal, err = c.api.Balance.Get(&stripe.BalanceParams{
			Params: stripe.Params{Context: ctx},
		})
		return err
	})
	if err != nil {
		return nil, c.upstream(err)
	}

	out := &entity.Balance{
		Available: make([]entity.BalanceAmount, 0, len(bal.Available)),
		Pending:   make([]entity.BalanceAmount, 0, len(bal.Pending)),
	}
	for _, a := range bal.Available {
		out.Available = append(out.Available, entity.BalanceAmount{
			Amount:   a.Amount,
			Currency: string(a.Currency),
		})
	}
	for _, a := range bal.Pending {
		out.Pending = append(out.Pending, entity.BalanceAmount{
			Amount:   a.Amount,
			Currency: string(a.Currency),
		})
	}
	return out, nil
}

// GetCharges fetches charges, newest first. The balance transaction is
// expanded so fee and net amounts come back in the same call.
func (c *StripeClient) GetCharges(ctx context.Context, params adapter.ListParams) ([]entity.Charge, error) {
	if c.api == nil {
		return nil, c.notConfigured()
	}

	var charges []entity.Charge
	err := c.withRetry(ctx, func() error {
		p := &stripe.ChargeListParams{
			ListParams:   listParams(params),
			CreatedRange: createdRange(params),
		}
		p.Context = ctx
		p.AddExpand("data.balance_transaction")

		charges = charges[:0]
		iter := c.api.Charges.List(p)
		for iter.Next() {
			ch := iter.Charge()
			out := entity.Charge{
				ID:             ch.ID,
				Amount:         ch.Amount,
				AmountRefunded: ch.AmountRefunded,
				Currency:       string(ch.Currency),
				Status:         string(ch.Status),
				Created:        ch.Created,
				Description:    ch.Description,
				CustomerEmail:  ch.ReceiptEmail,
			}
			if ch.BalanceTransaction != nil {
				out.FeeMinor = ch.BalanceTransaction.Fee
				out.NetMinor = ch.BalanceTransaction.Net
			}
			charges = append(charges, out)
		}
		return iter.Err()
	})
	if err != nil {
		return nil, c.upstream(err)
	}
	return charges, nil
}

// GetPayouts fetches payouts, newest first.
func (c *StripeClient) GetPayouts(ctx context.Context, params adapter.ListParams) ([]entity.Payout, error) {
	if c.api == nil {
		return nil, c.notConfigured()
	}

	var payouts []entity.Payout
	err := c.withRetry(ctx, func() error {
		p := &stripe.PayoutListParams{
			ListParams:   listParams(params),
			CreatedRange: createdRange(params),
		}
		p.Context = ctx

		payouts = payouts[:0]
		iter := c.api.Payouts.List(p)
		for iter.Next() {
			po := iter.Payout()
			payouts = append(payouts, entity.Payout{
				ID:          po.ID,
				Amount:      po.Amount,
				Currency:    string(po.Currency),
				Status:      string(po.Status),
				Created:     po.Created,
				ArrivalDate: po.ArrivalDate,
				Description: po.Description,
			})
		}
		return iter.Err()
	})
	if err != nil {
		return nil, c.upstream(err)
	}
	return payouts, nil
}

// GetBalanceTransactions fetches balance movements, newest first.
func (c *StripeClient) GetBalanceTransactions(ctx context.Context, params adapter.ListParams) ([]entity.BalanceTransaction, error) {
	if c.api == nil {
		return nil, c.notConfigured()
	}

	var txns []entity.BalanceTransaction
	err := c.withRetry(ctx, func() error {
		p := &stripe.BalanceTransactionListParams{
			ListParams:   listParams(params),
			CreatedRange: createdRange(params),
		}
		p.Context = ctx

		txns = txns[:0]
		iter := c.api.BalanceTransactions.List(p)
		for iter.Next() {
			bt := iter.BalanceTransaction()
			txns = append(txns, entity.BalanceTransaction{
				ID:          bt.ID,
				Amount:      bt.Amount,
				Fee:         bt.Fee,
				Net:         bt.Net,
				Currency:    string(bt.Currency),
				Type:        string(bt.Type),
				Created:     bt.Created,
				Description: bt.Description,
				Status:      string(bt.Status),
			})
		}
		return iter.Err()
	})
	if err != nil {
		return nil, c.upstream(err)
	}
	return txns, nil
}
