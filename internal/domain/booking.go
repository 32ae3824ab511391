package domain

import "time"

// Booking represents a reservation of a venue for an inclusive day range.
// A draft booking has an empty ID; the ID and the Created/Updated timestamps
// are assigned by the remote API on creation and are immutable here.
type Booking struct {
	ID       string
	VenueID  string
	DateFrom time.Time // check-in day, day granularity
	DateTo   time.Time // checkout day, inclusive, DateFrom <= DateTo
	Guests   int       // 1 <= Guests <= venue.MaxGuests
	Created  time.Time
	Updated  time.Time

	// Venue is populated when the booking was fetched with _venue=true
	// (profile booking listings). Nil otherwise.
	Venue *Venue
}

// Nights returns the number of nights the booking spans.
func (b *Booking) Nights() int {
	return Nights(b.DateFrom, b.DateTo)
}

// DaySet returns the inclusive sequence of calendar days the booking occupies.
func (b *Booking) DaySet() []time.Time {
	return DaySet(b.DateFrom, b.DateTo)
}

// IsUpcoming reports whether the stay has not yet ended at the given moment.
// The checkout day itself still counts as upcoming.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return !DayOf(b.DateTo).Before(DayOf(now))
}

// IsPast reports whether the stay ended before the given moment.
func (b *Booking) IsPast(now time.Time) bool {
	return !b.IsUpcoming(now)
}
