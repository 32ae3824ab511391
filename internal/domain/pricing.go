package domain

import "time"

// Nights returns the integer number of nights between two calendar dates.
// The difference is taken between the UTC midnights of the two days, never
// between raw instants, so daylight-saving transitions cannot skew the
// count. A same-day range is zero nights, not an error; inverted input
// degrades to zero as well.
func Nights(from, to time.Time) int {
	n := int(DayKey(to).Sub(DayKey(from)) / (24 * time.Hour))
	if n < 0 {
		return 0
	}
	return n
}

// Total returns the total price of a stay: nights times the nightly price.
// Zero for a same-day or inverted range.
func Total(from, to time.Time, pricePerNight float64) float64 {
	return float64(Nights(from, to)) * pricePerNight
}
