package statement

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/application/usecase/dashboard"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

var testWindow = entity.DateWindow{
	Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
}

func event(amount int64, currency string, kind entity.LedgerEventKind) entity.LedgerEvent {
	return entity.LedgerEvent{
		OccurredAt:  time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		AmountMinor: amount,
		Currency:    currency,
		Kind:        kind,
		Source:      entity.LedgerSourceManual,
	}
}

func chargeEvent(amount, fee int64, currency string) entity.LedgerEvent {
	ev := event(amount, currency, entity.LedgerKindIncome)
	ev.FeeMinor = fee
	ev.Source = entity.LedgerSourceProcessor
	return ev
}

func TestPrepareConvertsUSDToCAD(t *testing.T) {
	events := []entity.LedgerEvent{
		event(1000, "USD", entity.LedgerKindIncome),
	}

	data, err := Prepare(events, "Acme Inc.", "CAD", "1.36", testWindow, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.ManualLines[0].AmountMinor != 1360 {
		t.Errorf("expected 1360, got %d", data.ManualLines[0].AmountMinor)
	}
	if data.TotalIncome != 1360 {
		t.Errorf("expected total income 1360, got %d", data.TotalIncome)
	}
}

func TestPrepareConvertsCADToUSD(t *testing.T) {
	events := []entity.LedgerEvent{
		event(1360, "CAD", entity.LedgerKindExpense),
	}

	data, err := Prepare(events, "Acme Inc.", "USD", "1.36", testWindow, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.ManualLines[0].AmountMinor != 1000 {
		t.Errorf("expected 1000, got %d", data.ManualLines[0].AmountMinor)
	}
	if data.TotalExpense != 1000 {
		t.Errorf("expected total expense 1000, got %d", data.TotalExpense)
	}
}

func TestPrepareRoundsPerLine(t *testing.T) {
	// 999 * 1.36 = 1358.64, rounds to 1359.
	events := []entity.LedgerEvent{
		event(999, "USD", entity.LedgerKindIncome),
	}

	data, err := Prepare(events, "Acme Inc.", "CAD", "1.36", testWindow, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.ManualLines[0].AmountMinor != 1359 {
		t.Errorf("expected 1359, got %d", data.ManualLines[0].AmountMinor)
	}
}

func TestPrepareSameCurrencyPassesThrough(t *testing.T) {
	events := []entity.LedgerEvent{
		event(5000, "CAD", entity.LedgerKindIncome),
	}

	data, err := Prepare(events, "Acme Inc.", "CAD", "1.36", testWindow, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.ManualLines[0].AmountMinor != 5000 {
		t.Errorf("expected 5000, got %d", data.ManualLines[0].AmountMinor)
	}
}

func TestPrepareTotalsMatchLineSums(t *testing.T) {
	events := []entity.LedgerEvent{
		event(1001, "USD", entity.LedgerKindIncome),
		event(2003, "USD", entity.LedgerKindRoyalty),
		event(507, "USD", entity.LedgerKindExpense),
	}

	data, err := Prepare(events, "Acme Inc.", "CAD", "1.36", testWindow, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var income, expense int64
	for _, l := range append(data.ChargeLines, data.ManualLines...) {
		switch l.Kind {
		case entity.LedgerKindIncome, entity.LedgerKindRoyalty:
			income += l.AmountMinor
		case entity.LedgerKindExpense:
			expense += l.AmountMinor
		}
	}
	if data.TotalIncome != income {
		t.Errorf("total income %d does not match line sum %d", data.TotalIncome, income)
	}
	if data.TotalExpense != expense {
		t.Errorf("total expense %d does not match line sum %d", data.TotalExpense, expense)
	}
	if data.Net != income-expense {
		t.Errorf("net %d does not match %d", data.Net, income-expense)
	}
}

func TestPrepareSplitsSourcesInGivenOrder(t *testing.T) {
	// Rows stay grouped by source and keep the position their source
	// returned them in, even when dates interleave out of order.
	charge := chargeEvent(10000, 300, "CAD")
	charge.OccurredAt = time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	manualLate := event(100, "CAD", entity.LedgerKindIncome)
	manualLate.OccurredAt = time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	manualEarly := event(200, "CAD", entity.LedgerKindExpense)
	manualEarly.OccurredAt = time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)

	events := []entity.LedgerEvent{manualLate, charge, manualEarly}
	data, err := Prepare(events, "Acme Inc.", "CAD", "1.36", testWindow, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.ChargeLines) != 1 || len(data.ManualLines) != 2 {
		t.Fatalf("expected 1 charge line and 2 manual lines, got %d and %d",
			len(data.ChargeLines), len(data.ManualLines))
	}
	if data.ChargeLines[0].AmountMinor != 10000 {
		t.Errorf("expected charge amount 10000, got %d", data.ChargeLines[0].AmountMinor)
	}
	if !data.ManualLines[0].Date.After(data.ManualLines[1].Date) {
		t.Error("expected manual lines to keep the given order, not date order")
	}
}

func TestPrepareTotalsMatchPeriodAggregation(t *testing.T) {
	// The statement totals and the period aggregation of the same events
	// must agree within one minor unit per converted value.
	events := []entity.LedgerEvent{
		chargeEvent(10001, 301, "USD"),
		event(2003, "USD", entity.LedgerKindRoyalty),
		event(507, "USD", entity.LedgerKindExpense),
	}

	data, err := Prepare(events, "Acme Inc.", "CAD", "1.36", testWindow, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buckets, err := dashboard.AggregateByPeriod(events, dashboard.GranularityMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected a single bucket, got %d", len(buckets))
	}

	rate := decimal.RequireFromString("1.36")
	convert := func(v int64) int64 {
		return decimal.NewFromInt(v).Mul(rate).Round(0).IntPart()
	}
	within := func(name string, got, want, tolerance int64) {
		diff := got - want
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			t.Errorf("%s: statement %d vs aggregation %d, diff %d exceeds %d",
				name, got, want, diff, tolerance)
		}
	}

	within("income", data.TotalIncome, convert(buckets[0].Income), 2)
	within("expense", data.TotalExpense, convert(buckets[0].Expense), 1)
	within("fees", data.TotalFees, convert(buckets[0].Fees), 1)
	within("net", data.Net, convert(buckets[0].Net), 4)
}

func TestPrepareRejectsUnknownCurrency(t *testing.T) {
	_, err := Prepare(nil, "Acme Inc.", "EUR", "1.36", testWindow, time.Now())
	if !errors.Is(err, domainerror.ErrInvalidTargetCurrency) {
		t.Errorf("expected ErrInvalidTargetCurrency, got %v", err)
	}
}

func TestPrepareRejectsBadRate(t *testing.T) {
	for _, rate := range []string{"", "abc", "0", "-1.2"} {
		_, err := Prepare(nil, "Acme Inc.", "CAD", rate, testWindow, time.Now())
		if !errors.Is(err, domainerror.ErrInvalidConversionRate) {
			t.Errorf("rate %q: expected ErrInvalidConversionRate, got %v", rate, err)
		}
	}
}
