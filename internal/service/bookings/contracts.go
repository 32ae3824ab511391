package bookings

import (
	"context"
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	GetBookings(ctx context.Context, token, profileName string) ([]domain.Booking, error)
	GetManagedVenues(ctx context.Context, token, profileName string) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	UpdateBooking(ctx context.Context, token, id string, patch holidaze.BookingPatch) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, token, id string) error
}

// BookingStore интерфейс локальной коллекции бронирований профиля
type BookingStore interface {
	Put(profileName string, bookings []domain.Booking)
	Find(profileName, bookingID string) (domain.Booking, bool)
	Update(profileName string, booking domain.Booking)
	Remove(profileName, bookingID string)
	Upcoming(profileName string, now time.Time) []domain.Booking
	Past(profileName string, now time.Time) []domain.Booking
}

// VenueStore интерфейс локального кэша venue
type VenueStore interface {
	Get(id string) (domain.Venue, bool)
	Put(venue domain.Venue)
	UpdateBooking(venueID string, booking domain.Booking)
	RemoveBooking(venueID, bookingID string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
