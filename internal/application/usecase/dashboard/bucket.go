// Package dashboard contains dashboard-related use cases: period bucketing,
// category breakdowns, and the processor summary fan-out.
package dashboard

import (
	"sort"
	"time"

	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// Granularity selects the period a ledger event is bucketed into.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// PeriodBucket accumulates minor-unit totals for one period. Income counts
// income and royalty events, Fees only exists on processor-sourced events,
// and Net is derived as income - expense - fees.
type PeriodBucket struct {
	Key         string    `json:"key"`
	PeriodStart time.Time `json:"period_start"`
	Income      int64     `json:"income"`
	Expense     int64     `json:"expense"`
	Fees        int64     `json:"fees"`
	Net         int64     `json:"net"`
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// AggregateByPeriod groups ledger events into period buckets. Events are not
// filtered by any window here; callers scope the input. The result is sorted
// ascending by period start and contains only periods with at least one
// event: gap periods are absent, not zero-valued.
func AggregateByPeriod(events []entity.LedgerEvent, granularity Granularity) ([]PeriodBucket, error) {
	switch granularity {
	case GranularityDay, GranularityWeek, GranularityMonth:
	default:
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: day, week, or month",
			domainerror.ErrInvalidGranularity,
		)
	}

	buckets := make(map[string]*PeriodBucket)
	for _, ev := range events {
		start := periodStart(ev.OccurredAt, granularity)
		key := periodKey(start, granularity)

		b, ok := buckets[key]
		if !ok {
			b = &PeriodBucket{Key: key, PeriodStart: start}
			buckets[key] = b
		}

		switch ev.Kind {
		case entity.LedgerKindIncome, entity.LedgerKindRoyalty:
			b.Income += ev.AmountMinor
		case entity.LedgerKindExpense:
			b.Expense += ev.AmountMinor
		}
		b.Fees += ev.FeeMinor
	}

	out := make([]PeriodBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Net = b.Income - b.Expense - b.Fees
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PeriodStart.Before(out[j].PeriodStart)
	})
	return out, nil
}

// AggregateByCategory merges events into one total per category label,
// sorted descending by total. Category bucketing sums all event amounts
// regardless of kind, mirroring the revenue breakdown the dashboard shows.
func AggregateByCategory(events []entity.LedgerEvent) []CategoryTotal {
	totals := make(map[string]int64)
	for _, ev := range events {
		totals[ev.Category] += ev.AmountMinor
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// periodStart truncates a timestamp to the start of its containing period.
// Weeks start on Monday.
func periodStart(t time.Time, granularity Granularity) time.Time {
	t = t.UTC()
	year, month, day := t.Date()

	switch granularity {
	case GranularityWeek:
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday is 7
		}
		return time.Date(year, month, day-(weekday-1), 0, 0, 0, 0, time.UTC)
	case GranularityMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
}

// periodKey renders a bucket identity for the period start.
func periodKey(start time.Time, granularity Granularity) string {
	if granularity == GranularityMonth {
		return start.Format("2006-01")
	}
	return start.Format("2006-01-02")
}

// ValidGranularity reports whether g is a supported grouping.
func ValidGranularity(g Granularity) bool {
	return g == GranularityDay || g == GranularityWeek || g == GranularityMonth
}
