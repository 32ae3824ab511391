package domain

// Profile represents a Holidaze user profile. Venue managers own venues and
// see the bookings made against them; ordinary customers only hold bookings.
type Profile struct {
	Name         string
	Email        string
	Bio          string
	Avatar       Media
	Banner       Media
	VenueManager bool

	// Counts as reported by the remote API, zero when not expanded.
	VenueCount   int
	BookingCount int
}
