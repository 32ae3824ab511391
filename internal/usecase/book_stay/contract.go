package book_stay

import (
	"context"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	CreateBooking(ctx context.Context, token string, input holidaze.BookingInput) (*domain.Booking, error)
}

// VenueStore интерфейс локального кэша venue
type VenueStore interface {
	Get(id string) (domain.Venue, bool)
	Put(venue domain.Venue)
	AddBooking(venueID string, booking domain.Booking)
}

// BookingStore интерфейс локальной коллекции бронирований профиля
type BookingStore interface {
	Add(profileName string, booking domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
