package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func income(at time.Time, amount, fee int64) entity.LedgerEvent {
	return entity.LedgerEvent{
		OccurredAt:  at,
		AmountMinor: amount,
		FeeMinor:    fee,
		Kind:        entity.LedgerKindIncome,
		Source:      entity.LedgerSourceProcessor,
	}
}

func expense(at time.Time, amount int64) entity.LedgerEvent {
	return entity.LedgerEvent{
		OccurredAt:  at,
		AmountMinor: amount,
		Kind:        entity.LedgerKindExpense,
		Source:      entity.LedgerSourceManual,
	}
}

func TestAggregateByPeriodMonth(t *testing.T) {
	events := []entity.LedgerEvent{
		income(day(2024, time.March, 5), 6000, 200),
		income(day(2024, time.March, 20), 4000, 100),
		expense(day(2024, time.March, 12), 2500),
		income(day(2024, time.April, 1), 1000, 0),
	}

	buckets, err := AggregateByPeriod(events, GranularityMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}

	march := buckets[0]
	if march.Key != "2024-03" {
		t.Errorf("expected key 2024-03, got %s", march.Key)
	}
	if march.Income != 10000 {
		t.Errorf("expected income 10000, got %d", march.Income)
	}
	if march.Expense != 2500 {
		t.Errorf("expected expense 2500, got %d", march.Expense)
	}
	if march.Fees != 300 {
		t.Errorf("expected fees 300, got %d", march.Fees)
	}
	if march.Net != 7200 {
		t.Errorf("expected net 7200, got %d", march.Net)
	}
	if buckets[1].Key != "2024-04" {
		t.Errorf("expected key 2024-04, got %s", buckets[1].Key)
	}
}

func TestAggregateByPeriodOrderIndependent(t *testing.T) {
	forward := []entity.LedgerEvent{
		income(day(2024, time.January, 2), 100, 0),
		expense(day(2024, time.January, 15), 30),
		income(day(2024, time.February, 1), 50, 5),
	}
	reversed := []entity.LedgerEvent{forward[2], forward[1], forward[0]}

	a, err := AggregateByPeriod(forward, GranularityMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := AggregateByPeriod(reversed, GranularityMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("bucket counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("bucket %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAggregateByPeriodWeekStartsMonday(t *testing.T) {
	// 2024-03-06 is a Wednesday; its week starts Monday 2024-03-04.
	// 2024-03-10 is the Sunday of that same week.
	events := []entity.LedgerEvent{
		income(day(2024, time.March, 6), 100, 0),
		income(day(2024, time.March, 10), 200, 0),
		income(day(2024, time.March, 11), 400, 0), // next Monday
	}

	buckets, err := AggregateByPeriod(events, GranularityWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Key != "2024-03-04" {
		t.Errorf("expected week key 2024-03-04, got %s", buckets[0].Key)
	}
	if buckets[0].Income != 300 {
		t.Errorf("expected week income 300, got %d", buckets[0].Income)
	}
	if buckets[1].Key != "2024-03-11" {
		t.Errorf("expected week key 2024-03-11, got %s", buckets[1].Key)
	}
}

func TestAggregateByPeriodSkipsGapPeriods(t *testing.T) {
	events := []entity.LedgerEvent{
		income(day(2024, time.January, 1), 100, 0),
		income(day(2024, time.March, 1), 100, 0),
	}

	buckets, err := AggregateByPeriod(events, GranularityMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected february to be absent, got %d buckets", len(buckets))
	}
}

func TestAggregateByPeriodEmptyInput(t *testing.T) {
	buckets, err := AggregateByPeriod(nil, GranularityDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 0 {
		t.Fatalf("expected no buckets, got %d", len(buckets))
	}
}

func TestAggregateByPeriodInvalidGranularity(t *testing.T) {
	_, err := AggregateByPeriod(nil, Granularity("year"))
	if err == nil {
		t.Fatal("expected error for unknown granularity")
	}
	if !errors.Is(err, domainerror.ErrInvalidGranularity) {
		t.Errorf("expected ErrInvalidGranularity, got %v", err)
	}
}

func TestAggregateByPeriodRoyaltyCountsAsIncome(t *testing.T) {
	events := []entity.LedgerEvent{
		{OccurredAt: day(2024, time.May, 1), AmountMinor: 700, Kind: entity.LedgerKindRoyalty},
	}
	buckets, err := AggregateByPeriod(events, GranularityDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buckets[0].Income != 700 || buckets[0].Net != 700 {
		t.Errorf("expected royalty in income, got %+v", buckets[0])
	}
}

func TestAggregateByCategoryDescending(t *testing.T) {
	events := []entity.LedgerEvent{
		{OccurredAt: day(2024, time.June, 1), AmountMinor: 100, Kind: entity.LedgerKindIncome, Category: "Payments"},
		{OccurredAt: day(2024, time.June, 2), AmountMinor: 500, Kind: entity.LedgerKindIncome, Category: "Royalties"},
		{OccurredAt: day(2024, time.June, 3), AmountMinor: 250, Kind: entity.LedgerKindIncome, Category: "Payments"},
	}

	totals := AggregateByCategory(events)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals[0].Category != "Royalties" || totals[0].Total != 500 {
		t.Errorf("expected Royalties 500 first, got %+v", totals[0])
	}
	if totals[1].Category != "Payments" || totals[1].Total != 350 {
		t.Errorf("expected Payments 350 second, got %+v", totals[1])
	}
}
