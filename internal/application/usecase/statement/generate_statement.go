package statement

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

// GenerateStatementInput represents the input for statement generation.
// Currency is the target currency of the document, CAD or USD.
type GenerateStatementInput struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Currency  string
}

// GenerateStatementOutput represents the output of statement generation.
type GenerateStatementOutput struct {
	Document []byte
	Filename string
}

// GenerateStatementUseCase builds a statement for a period and renders it as
// a downloadable document.
type GenerateStatementUseCase struct {
	paymentsClient  adapter.PaymentsClient
	transactionRepo adapter.TransactionRepository
	renderer        Renderer
	companyName     string
	conversionRate  string
	defaultCurrency string
}

// NewGenerateStatementUseCase creates a new GenerateStatementUseCase instance.
func NewGenerateStatementUseCase(
	paymentsClient adapter.PaymentsClient,
	transactionRepo adapter.TransactionRepository,
	renderer Renderer,
	companyName string,
	conversionRate string,
	defaultCurrency string,
) *GenerateStatementUseCase {
	return &GenerateStatementUseCase{
		paymentsClient:  paymentsClient,
		transactionRepo: transactionRepo,
		renderer:        renderer,
		companyName:     companyName,
		conversionRate:  conversionRate,
		defaultCurrency: defaultCurrency,
	}
}

// Execute performs the statement generation.
func (uc *GenerateStatementUseCase) Execute(ctx context.Context, input GenerateStatementInput) (*GenerateStatementOutput, error) {
	window := entity.DateWindow{Start: input.StartDate, End: input.EndDate}
	if !window.Valid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	currency := input.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	start := window.Start
	end := window.End
	txs, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	events := entity.LedgerEventsFromTransactions(txs)

	charges, err := uc.paymentsClient.GetCharges(ctx, adapter.ListParams{
		Limit:      chargePageLimit,
		CreatedGTE: start.Unix(),
		CreatedLTE: end.Unix(),
	})
	if err != nil {
		slog.Warn("charge fetch failed, statement covers books only",
			"action", "generate_statement", "user_id", input.UserID, "error", err)
	} else {
		events = append(events, entity.LedgerEventsFromCharges(charges)...)
	}

	data, err := Prepare(events, uc.companyName, currency, uc.conversionRate, window, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	doc, err := uc.renderer.Render(data)
	if err != nil {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeStatementRender,
			"failed to render statement document",
			err,
		)
	}

	filename := fmt.Sprintf(
		"statement_%s_%s_%s.pdf",
		data.Currency,
		window.Start.Format("2006-01-02"),
		window.End.Format("2006-01-02"),
	)

	return &GenerateStatementOutput{Document: doc, Filename: filename}, nil
}
