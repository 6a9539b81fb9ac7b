// Package dateutil provides the calendar arithmetic shared by the
// amortization, projection and payoff engines.
package dateutil

import (
	"time"
)

// MonthsBetween counts the number of completed calendar months from ref to
// deadline. A month only counts once the deadline's day-of-month has been
// reached, so May 10 to July 5 is one month, not two. Deadlines at or
// before ref yield 0.
func MonthsBetween(ref, deadline time.Time) int {
	months := (deadline.Year()-ref.Year())*12 + int(deadline.Month()) - int(ref.Month())
	if deadline.Day() < ref.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// MonthKey returns the year-month bucket key for a date, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthBounds returns the first and last day of the calendar month
// containing t, at midnight and end-of-day respectively, so the pair forms
// an inclusive range.
func MonthBounds(t time.Time) (first, last time.Time) {
	first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last = first.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return first, last
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Age calculates the age in whole years at a given date.
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}
