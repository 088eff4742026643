package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// summaryChargeLimit bounds each listing in the summary fan-out.
const summaryChargeLimit = 100

// GetSummaryInput represents the input for the processor summary fetch.
type GetSummaryInput struct {
	UserID string
}

// GetSummaryOutput represents the output of the processor summary fetch.
// Cached reports whether the payload was served from cache.
type GetSummaryOutput struct {
	Summary *entity.DashboardSummary
	Cached  bool
}

// GetSummaryUseCase fans out the four processor listings the dashboard
// header needs and caches the merged result. A single listing failing leaves
// its section nil rather than failing the whole summary; only when every
// listing fails is the upstream error surfaced.
type GetSummaryUseCase struct {
	paymentsClient adapter.PaymentsClient
	summaryCache   adapter.SummaryCache
	cacheTTL       time.Duration
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	paymentsClient adapter.PaymentsClient,
	summaryCache adapter.SummaryCache,
	cacheTTL time.Duration,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		paymentsClient: paymentsClient,
		summaryCache:   summaryCache,
		cacheTTL:       cacheTTL,
	}
}

// Execute performs the summary fetch.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if uc.summaryCache != nil {
		cached, err := uc.summaryCache.Get(ctx, input.UserID)
		if err != nil {
			slog.Warn("summary cache read failed", "error", err)
		} else if cached != nil {
			return &GetSummaryOutput{Summary: cached, Cached: true}, nil
		}
	}

	summary := &entity.DashboardSummary{}
	params := adapter.ListParams{Limit: summaryChargeLimit}

	var balanceErr, chargesErr, payoutsErr, txnsErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary.Balance, balanceErr = uc.paymentsClient.GetBalance(gctx)
		return nil
	})
	g.Go(func() error {
		summary.Charges, chargesErr = uc.paymentsClient.GetCharges(gctx, params)
		return nil
	})
	g.Go(func() error {
		summary.Payouts, payoutsErr = uc.paymentsClient.GetPayouts(gctx, params)
		return nil
	})
	g.Go(func() error {
		summary.BalanceTransactions, txnsErr = uc.paymentsClient.GetBalanceTransactions(gctx, params)
		return nil
	})
	_ = g.Wait()

	failures := 0
	for _, err := range []error{balanceErr, chargesErr, payoutsErr, txnsErr} {
		if err != nil {
			failures++
			slog.Warn("summary section fetch failed", "error", err)
		}
	}
	if failures == 4 {
		return nil, domainerror.NewPaymentsError(
			domainerror.ErrCodePaymentsUpstream,
			"payments service unavailable",
			balanceErr,
		)
	}

	if uc.summaryCache != nil && failures == 0 {
		if err := uc.summaryCache.Set(ctx, input.UserID, summary, uc.cacheTTL); err != nil {
			slog.Warn("summary cache write failed", "error", err)
		}
	}

	return &GetSummaryOutput{Summary: summary}, nil
}
