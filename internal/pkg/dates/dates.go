// Package dates provides whole-day date arithmetic. Both sides of every
// comparison are truncated to midnight first, so results do not wobble
// with time of day.
package dates

import "time"

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of whole days from now until target.
// Zero means target is today; negative means it has passed. The
// calculation is done on UTC-normalized dates so DST shifts cannot
// produce off-by-one results.
func DaysUntil(now, target time.Time) int {
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(n).Hours() / 24)
}

// SameMonth reports whether a and b fall in the same calendar month of
// the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameYear reports whether a and b fall in the same calendar year.
func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}
