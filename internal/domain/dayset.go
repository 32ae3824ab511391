package domain

import "time"

// DayOf normalizes a moment to midnight of its calendar day, keeping the
// location. All day-set computations work at this granularity.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey normalizes a moment to the UTC midnight of its calendar day.
// Map keys must not depend on the location a date was parsed in, so every
// day-set lookup goes through this form.
func DayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two moments fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaySet expands an inclusive [from, to] interval into the sequence of
// calendar days it occupies, both endpoints included. The checkout day is
// deliberately part of the set: the picker disables it, so back-to-back
// stays are not possible.
//
// Returns an empty sequence when to is before from; guarding the order is
// the caller's responsibility. Pure and deterministic.
func DaySet(from, to time.Time) []time.Time {
	from = DayOf(from)
	to = DayOf(to)
	if to.Before(from) {
		return []time.Time{}
	}

	days := make([]time.Time, 0, Nights(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DisabledDays builds the disabled-day set for a venue: the union of the
// day sets of all its existing bookings, keyed by DayKey. Always derived
// from the current collection, never stored.
func DisabledDays(bookings []Booking) map[time.Time]struct{} {
	disabled := make(map[time.Time]struct{})
	for i := range bookings {
		for _, day := range bookings[i].DaySet() {
			disabled[DayKey(day)] = struct{}{}
		}
	}
	return disabled
}

// IsDayDisabled reports whether the calendar day of t is in the set.
func IsDayDisabled(disabled map[time.Time]struct{}, t time.Time) bool {
	_, ok := disabled[DayKey(t)]
	return ok
}
