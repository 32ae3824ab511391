package venues

import (
	"context"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	ListVenues(ctx context.Context, limit, page int, sort, sortOrder string) ([]domain.Venue, domain.PaginationMeta, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	GetManagedVenues(ctx context.Context, token, profileName string) ([]domain.Venue, error)
	CreateVenue(ctx context.Context, token string, input holidaze.VenueInput) (*domain.Venue, error)
	EditVenue(ctx context.Context, token, id string, input holidaze.VenueInput) (*domain.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
}

// Searcher интерфейс координатора поиска с политикой last request wins
type Searcher interface {
	Search(ctx context.Context, q string, limit, page int) ([]domain.Venue, error)
}

// VenueStore интерфейс локального кэша venue
type VenueStore interface {
	Get(id string) (domain.Venue, bool)
	Put(venue domain.Venue)
	Remove(id string)
}

// ManagedVenueStore интерфейс локальной коллекции venue менеджера
type ManagedVenueStore interface {
	Put(profileName string, venues []domain.Venue)
	Add(profileName string, venue domain.Venue)
	Update(profileName string, venue domain.Venue)
	Remove(profileName, venueID string)
	Get(profileName string) []domain.Venue
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
