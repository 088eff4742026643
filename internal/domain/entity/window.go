package entity

import "time"

// DateWindow is an inclusive start/end date range used to scope queries and
// projections. Both bounds are calendar dates; callers must ensure
// Start <= End (validated at the use-case boundary).
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the window, bounds included.
func (w DateWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Valid reports whether the window's bounds are ordered.
func (w DateWindow) Valid() bool {
	return !w.End.Before(w.Start)
}
