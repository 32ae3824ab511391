package domain

// Default listing parameters (mirror the remote API defaults the frontend
// relied on)
const (
	DefaultVenueListLimit = 40
	DefaultSearchLimit    = 50
	DefaultVenueListSort  = "created"
	DefaultVenueListOrder = "desc"
)

// Business validation constants
const (
	MinGuests            = 1
	MaxVenueNameLength   = 100
	MaxDescriptionLength = 2000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
