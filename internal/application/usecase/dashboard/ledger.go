package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// chargePageLimit is the page size requested from the processor listing.
const chargePageLimit = 100

// loadLedgerEvents fetches processor charges and manual transactions inside
// the window and merges them into one ledger event stream. A processor
// failure does not sink the whole dashboard: the books side still renders,
// so charge errors surface as an empty processor contribution.
func loadLedgerEvents(
	ctx context.Context,
	payments adapter.PaymentsClient,
	transactions adapter.TransactionRepository,
	userID string,
	window entity.DateWindow,
) ([]entity.LedgerEvent, error) {
	start := window.Start
	end := window.End

	txs, err := transactions.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	events := entity.LedgerEventsFromTransactions(txs)

	charges, err := payments.GetCharges(ctx, adapter.ListParams{
		Limit:      chargePageLimit,
		CreatedGTE: start.Unix(),
		CreatedLTE: end.Unix(),
	})
	if err != nil {
		slog.Warn("charge fetch failed, dashboard covers books only",
			"action", "load_ledger_events", "user_id", userID, "error", err)
	} else {
		events = append(events, entity.LedgerEventsFromCharges(charges)...)
	}

	return events, nil
}

// validateWindow checks the date range shared by the trend and breakdown
// use cases.
func validateWindow(start, end time.Time) (entity.DateWindow, error) {
	if start.IsZero() {
		return entity.DateWindow{}, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end.IsZero() {
		return entity.DateWindow{}, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if end.Before(start) {
		return entity.DateWindow{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return entity.DateWindow{Start: start, End: end}, nil
}
