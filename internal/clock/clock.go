// Package clock supplies the current time and calendar-date identity.
// The record store and the dashboard both derive "today" through it, so
// tests can substitute a fixed clock instead of sleeping across midnight.
package clock

import "time"

// Clock produces the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// SameDay reports whether two instants fall on the same calendar date in
// the local time zone. Date identity is re-derived from the instant at
// comparison time; it is never stored separately.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
