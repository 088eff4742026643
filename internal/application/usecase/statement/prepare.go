// Package statement assembles and renders downloadable financial statements.
// Amounts stay in minor units end to end; currency conversion uses a fixed
// configured rate and happens per line item before totalling.
package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// Line is one statement row, already converted to the target currency.
type Line struct {
	Date             time.Time
	Description      string
	Category         string
	Source           entity.LedgerEventSource
	Kind             entity.LedgerEventKind
	AmountMinor      int64
	FeeMinor         int64
	OriginalMinor    int64
	OriginalCurrency string
}

// Data is everything the renderer needs to draw a statement. Processor and
// manual rows stay in separate tables, each in the order its source returned
// them.
type Data struct {
	CompanyName  string
	Currency     string
	PeriodStart  time.Time
	PeriodEnd    time.Time
	GeneratedAt  time.Time
	ChargeLines  []Line
	ManualLines  []Line
	TotalIncome  int64
	TotalExpense int64
	TotalFees    int64
	Net          int64
}

// Renderer draws statement data into a downloadable document.
type Renderer interface {
	Render(data *Data) ([]byte, error)
}

// converter converts minor-unit amounts between USD and CAD at a fixed rate.
type converter struct {
	rate decimal.Decimal // CAD per USD
	to   string
}

func newConverter(target, rate string) (*converter, error) {
	target = strings.ToUpper(target)
	if target != "CAD" && target != "USD" {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidTargetCurrency,
			"target currency must be CAD or USD",
			domainerror.ErrInvalidTargetCurrency,
		)
	}

	r, err := decimal.NewFromString(rate)
	if err != nil || r.Sign() <= 0 {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidConversionRate,
			"conversion rate must be a positive number",
			domainerror.ErrInvalidConversionRate,
		)
	}

	return &converter{rate: r, to: target}, nil
}

// convert converts a minor-unit amount in from-currency to the target
// currency, rounding half up to the nearest minor unit. Unknown currencies
// pass through unchanged.
func (c *converter) convert(amount int64, from string) int64 {
	from = strings.ToUpper(from)
	if from == c.to || (from != "CAD" && from != "USD") {
		return amount
	}

	d := decimal.NewFromInt(amount)
	if from == "USD" {
		d = d.Mul(c.rate)
	} else {
		d = d.Div(c.rate)
	}
	return d.Round(0).IntPart()
}

// Prepare converts ledger events into statement data in the target currency.
// Each line keeps its source's position; totals are sums of the converted
// per-line amounts, so rounding happens once per line, never on the totals.
func Prepare(
	events []entity.LedgerEvent,
	companyName string,
	targetCurrency string,
	conversionRate string,
	window entity.DateWindow,
	now time.Time,
) (*Data, error) {
	conv, err := newConverter(targetCurrency, conversionRate)
	if err != nil {
		return nil, err
	}

	data := &Data{
		CompanyName: companyName,
		Currency:    conv.to,
		PeriodStart: window.Start,
		PeriodEnd:   window.End,
		GeneratedAt: now,
	}

	for _, ev := range events {
		line := Line{
			Date:             ev.OccurredAt,
			Description:      ev.Description,
			Category:         ev.Category,
			Source:           ev.Source,
			Kind:             ev.Kind,
			AmountMinor:      conv.convert(ev.AmountMinor, ev.Currency),
			FeeMinor:         conv.convert(ev.FeeMinor, ev.Currency),
			OriginalMinor:    ev.AmountMinor,
			OriginalCurrency: strings.ToUpper(ev.Currency),
		}
		if ev.Source == entity.LedgerSourceProcessor {
			data.ChargeLines = append(data.ChargeLines, line)
		} else {
			data.ManualLines = append(data.ManualLines, line)
		}

		switch ev.Kind {
		case entity.LedgerKindIncome, entity.LedgerKindRoyalty:
			data.TotalIncome += line.AmountMinor
		case entity.LedgerKindExpense:
			data.TotalExpense += line.AmountMinor
		}
		data.TotalFees += line.FeeMinor
	}

	data.Net = data.TotalIncome - data.TotalExpense - data.TotalFees
	return data, nil
}
