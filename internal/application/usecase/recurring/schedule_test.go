package recurring

import (
	"testing"
	"time"

	"github.com/ledgerline/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rule(freq entity.Frequency, start time.Time, end *time.Time) *entity.RecurringTransaction {
	return &entity.RecurringTransaction{
		Name:      "test rule",
		Amount:    500,
		Kind:      entity.RecurringKindExpense,
		Frequency: freq,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}
}

func TestCountOccurrences(t *testing.T) {
	jan20 := date(2025, time.January, 20)
	dec31 := date(2024, time.December, 31)

	tests := []struct {
		name   string
		rule   *entity.RecurringTransaction
		window entity.DateWindow
		want   int
	}{
		{
			name:   "daily count over fully contained rule equals day span inclusive",
			rule:   rule(entity.FrequencyDaily, date(2025, time.March, 10), ptr(date(2025, time.March, 19))),
			window: entity.DateWindow{Start: date(2025, time.March, 1), End: date(2025, time.March, 31)},
			want:   10,
		},
		{
			name:   "window ends before rule starts",
			rule:   rule(entity.FrequencyDaily, date(2025, time.June, 1), nil),
			window: entity.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.May, 31)},
			want:   0,
		},
		{
			name:   "rule ends before window starts",
			rule:   rule(entity.FrequencyWeekly, date(2024, time.January, 1), &dec31),
			window: entity.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.December, 31)},
			want:   0,
		},
		{
			name:   "monthly mid-window start counts four occurrences",
			rule:   rule(entity.FrequencyMonthly, date(2025, time.January, 15), nil),
			window: entity.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.April, 30)},
			want:   4, // Jan 15, Feb 15, Mar 15, Apr 15
		},
		{
			name:   "biweekly capped by rule end date",
			rule:   rule(entity.FrequencyBiweekly, date(2025, time.January, 1), &jan20),
			window: entity.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.January, 31)},
			want:   2, // Jan 1 and Jan 15; Jan 29 is past the end date
		},
		{
			name:   "weekly partial overlap counts only in-window occurrences",
			rule:   rule(entity.FrequencyWeekly, date(2025, time.January, 1), nil),
			window: entity.DateWindow{Start: date(2025, time.January, 10), End: date(2025, time.January, 31)},
			want:   3, // Jan 15, 22, 29
		},
		{
			name:   "yearly over a decade",
			rule:   rule(entity.FrequencyYearly, date(2020, time.February, 29), nil),
			window: entity.DateWindow{Start: date(2020, time.January, 1), End: date(2029, time.December, 31)},
			want:   10,
		},
		{
			name:   "single day window hit",
			rule:   rule(entity.FrequencyDaily, date(2025, time.March, 5), nil),
			window: entity.DateWindow{Start: date(2025, time.March, 5), End: date(2025, time.March, 5)},
			want:   1,
		},
		{
			name:   "occurrence on window end is included",
			rule:   rule(entity.FrequencyWeekly, date(2025, time.January, 1), nil),
			window: entity.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.January, 8)},
			want:   2,
		},
		{
			name:   "unknown frequency counts zero",
			rule:   rule(entity.Frequency("quarterly"), date(2024, time.January, 1), nil),
			window: entity.DateWindow{Start: date(2024, time.January, 1), End: date(2024, time.December, 31)},
			want:   0,
		},
		{
			name:   "daily over two decades stays exact",
			rule:   rule(entity.FrequencyDaily, date(2000, time.January, 1), nil),
			window: entity.DateWindow{Start: date(2000, time.January, 1), End: date(2019, time.December, 31)},
			want:   7305, // 20 years including 5 leap days
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountOccurrences(tt.rule, tt.window)
			if got != tt.want {
				t.Errorf("CountOccurrences() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountOccurrencesDailyMatchesDaySpan(t *testing.T) {
	// For a daily rule fully contained in the window, the count must equal
	// endDate - startDate + 1 in days, whatever the span.
	spans := []int{1, 28, 31, 365, 366, 1000}
	for _, span := range spans {
		start := date(2024, time.January, 1)
		end := start.AddDate(0, 0, span-1)
		r := rule(entity.FrequencyDaily, start, &end)
		window := entity.DateWindow{Start: date(2023, time.December, 1), End: end.AddDate(0, 1, 0)}

		if got := CountOccurrences(r, window); got != span {
			t.Errorf("span %d days: CountOccurrences() = %d, want %d", span, got, span)
		}
	}
}

func TestMonthlyClampPolicy(t *testing.T) {
	// A monthly rule anchored on Jan 31 clamps short months to their last
	// day but keeps firing on the 31st where the month has one.
	s := NewSchedule(date(2025, time.January, 31), entity.FrequencyMonthly)

	want := []time.Time{
		date(2025, time.January, 31),
		date(2025, time.February, 28),
		date(2025, time.March, 31),
		date(2025, time.April, 30),
		date(2025, time.May, 31),
	}
	for n, w := range want {
		if got := s.Occurrence(n); !got.Equal(w) {
			t.Errorf("Occurrence(%d) = %s, want %s", n, got.Format("2006-01-02"), w.Format("2006-01-02"))
		}
	}

	// Leap year February keeps the 29th.
	leap := NewSchedule(date(2024, time.January, 31), entity.FrequencyMonthly)
	if got := leap.Occurrence(1); !got.Equal(date(2024, time.February, 29)) {
		t.Errorf("leap Occurrence(1) = %s, want 2024-02-29", got.Format("2006-01-02"))
	}
}

func TestYearlyClampPolicy(t *testing.T) {
	// A yearly rule anchored on Feb 29 fires Feb 28 in common years.
	s := NewSchedule(date(2024, time.February, 29), entity.FrequencyYearly)

	if got := s.Occurrence(1); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("Occurrence(1) = %s, want 2025-02-28", got.Format("2006-01-02"))
	}
	if got := s.Occurrence(4); !got.Equal(date(2028, time.February, 29)) {
		t.Errorf("Occurrence(4) = %s, want 2028-02-29", got.Format("2006-01-02"))
	}
}

func TestIteratorIsRestartable(t *testing.T) {
	s := NewSchedule(date(2025, time.March, 1), entity.FrequencyWeekly)

	first := s.Iter()
	a1, a2 := first.Next(), first.Next()

	second := s.Iter()
	b1, b2 := second.Next(), second.Next()

	if !a1.Equal(b1) || !a2.Equal(b2) {
		t.Errorf("restarted iterator diverged: (%s, %s) vs (%s, %s)", a1, a2, b1, b2)
	}
}

func TestCountOccurrencesUnknownFrequencyTerminates(t *testing.T) {
	// An empty frequency stored by a buggy writer must count zero, not spin
	// the enumeration loop.
	r := rule(entity.Frequency(""), date(2024, time.January, 1), nil)
	window := entity.DateWindow{Start: date(2024, time.January, 1), End: date(2024, time.December, 31)}

	done := make(chan int, 1)
	go func() { done <- CountOccurrences(r, window) }()

	select {
	case got := <-done:
		if got != 0 {
			t.Errorf("CountOccurrences() = %d, want 0", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("CountOccurrences did not return for an unrecognized frequency")
	}
}

func TestCountOccurrencesIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.January, 15, 23, 30, 0, 0, time.UTC)
	r := rule(entity.FrequencyMonthly, start, nil)
	window := entity.DateWindow{
		Start: time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
	}

	if got := CountOccurrences(r, window); got != 4 {
		t.Errorf("CountOccurrences() = %d, want 4", got)
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
