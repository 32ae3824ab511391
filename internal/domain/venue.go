package domain

import "time"

// Media is an image attached to a venue or profile.
type Media struct {
	URL string
	Alt string
}

// Meta holds the amenity flags of a venue.
type Meta struct {
	Wifi      bool
	Parking   bool
	Breakfast bool
	Pets      bool
}

// Location holds the address attributes of a venue. Opaque to the booking
// logic, carried through for display.
type Location struct {
	Address   string
	City      string
	Zip       string
	Country   string
	Continent string
	Lat       float64
	Lng       float64
}

// Venue represents a bookable listing in the Holidaze marketplace.
// Identifiers and timestamps are assigned by the remote API; the gateway
// never invents them.
type Venue struct {
	ID          string
	Name        string
	Description string
	Media       []Media
	Price       float64 // price per night, positive
	MaxGuests   int     // positive
	Rating      float64
	Meta        Meta
	Location    Location
	Owner       string // profile name of the manager, empty when not expanded
	Created     time.Time
	Updated     time.Time

	// Bookings holds the venue's existing bookings when the venue was
	// fetched with _bookings=true. Insertion order is irrelevant.
	Bookings []Booking
}

// DisabledDays returns the set of calendar days occupied by the venue's
// existing bookings. Derived state, recomputed on every call.
func (v *Venue) DisabledDays() map[time.Time]struct{} {
	return DisabledDays(v.Bookings)
}

// PaginationMeta describes the paging state of a venue list response.
type PaginationMeta struct {
	IsFirstPage  bool
	IsLastPage   bool
	CurrentPage  int
	PreviousPage *int
	NextPage     *int
	PageCount    int
	TotalCount   int
}
