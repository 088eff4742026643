// Package recurring contains recurring transaction use cases, including the
// occurrence schedule that projects a rule's firing dates across a window.
package recurring

import (
	"time"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// Schedule is the lazy sequence of occurrence dates generated by a start date
// and a frequency. It carries no mutable state; occurrences are addressed by
// index and enumerated through a restartable Iterator, so consuming a
// schedule twice always yields the same dates.
//
// Monthly and yearly steps preserve the start date's day-of-month where the
// target month has it, and otherwise clamp to the month's last valid day.
// The clamp is anchored on the start date, not the previous occurrence:
// a rule starting Jan 31 fires Feb 28 (29 in leap years) and then Mar 31,
// never drifting to the 28th for good.
type Schedule struct {
	start time.Time
	freq  entity.Frequency
}

// NewSchedule creates a schedule from a start date and frequency.
// The start date is truncated to a calendar date in UTC.
func NewSchedule(start time.Time, freq entity.Frequency) Schedule {
	return Schedule{start: toDate(start), freq: freq}
}

// Occurrence returns the nth occurrence date, n >= 0. Occurrence(0) is the
// start date itself.
func (s Schedule) Occurrence(n int) time.Time {
	switch s.freq {
	case entity.FrequencyDaily:
		return s.start.AddDate(0, 0, n)
	case entity.FrequencyWeekly:
		return s.start.AddDate(0, 0, 7*n)
	case entity.FrequencyBiweekly:
		return s.start.AddDate(0, 0, 14*n)
	case entity.FrequencyMonthly:
		return addMonthsClamped(s.start, n)
	case entity.FrequencyYearly:
		return addMonthsClamped(s.start, 12*n)
	default:
		return s.start
	}
}

// stepDays returns the fixed step in days for the three fixed-step
// frequencies, or 0 for calendar-aware frequencies.
func (s Schedule) stepDays() int {
	switch s.freq {
	case entity.FrequencyDaily:
		return 1
	case entity.FrequencyWeekly:
		return 7
	case entity.FrequencyBiweekly:
		return 14
	}
	return 0
}

// Iter returns a fresh iterator positioned at the first occurrence.
func (s Schedule) Iter() *Iterator {
	return &Iterator{schedule: s}
}

// Iterator walks a Schedule's occurrence dates in order. A new iterator
// restarts from the beginning; the underlying schedule is never mutated.
type Iterator struct {
	schedule Schedule
	n        int
}

// Next returns the next occurrence date and advances the iterator.
func (it *Iterator) Next() time.Time {
	d := it.schedule.Occurrence(it.n)
	it.n++
	return d
}

// CountOccurrences returns how many occurrences of the rule's schedule fall
// inside the window, bounds inclusive. The rule's end date, when set, further
// caps the range. Fixed-step frequencies are counted in closed form; monthly
// and yearly enumerate the calendar since month lengths vary. No occurrence
// list is ever materialized.
func CountOccurrences(rule *entity.RecurringTransaction, window entity.DateWindow) int {
	// A frequency outside the five enums has no schedule to enumerate.
	// Validation rejects it at the boundary; a corrupt stored value counts
	// as zero occurrences rather than wedging the enumeration loop.
	if !entity.ValidFrequency(rule.Frequency) {
		return 0
	}

	start := toDate(rule.StartDate)
	winStart := toDate(window.Start)
	winEnd := toDate(window.End)

	if start.After(winEnd) {
		return 0
	}
	if rule.EndDate != nil && toDate(*rule.EndDate).Before(winStart) {
		return 0
	}

	effectiveStart := winStart
	if start.After(effectiveStart) {
		effectiveStart = start
	}
	effectiveEnd := winEnd
	if rule.EndDate != nil {
		if end := toDate(*rule.EndDate); end.Before(effectiveEnd) {
			effectiveEnd = end
		}
	}
	if effectiveStart.After(effectiveEnd) {
		return 0
	}

	schedule := NewSchedule(start, rule.Frequency)

	if step := schedule.stepDays(); step > 0 {
		// First index at or after effectiveStart, last index at or before
		// effectiveEnd; both are exact integer divisions on day counts.
		first := ceilDiv(daysBetween(start, effectiveStart), step)
		if first < 0 {
			first = 0
		}
		last := daysBetween(start, effectiveEnd) / step
		if last < first {
			return 0
		}
		return last - first + 1
	}

	count := 0
	for it := schedule.Iter(); ; {
		d := it.Next()
		if d.After(effectiveEnd) {
			break
		}
		if !d.Before(effectiveStart) {
			count++
		}
	}
	return count
}

// addMonthsClamped adds months to the anchor date, preserving the anchor's
// day-of-month and clamping to the target month's last day when shorter.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	year, month, day := anchor.Date()
	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// toDate truncates a timestamp to its calendar date in UTC.
func toDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b, negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
