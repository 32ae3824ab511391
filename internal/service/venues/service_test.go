package venues

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/infra/state"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
	"github.com/mariusjb/holidaze-gateway/internal/search"
	"github.com/mariusjb/holidaze-gateway/internal/service/venues/models"
)

type mockClient struct {
	listVenuesFunc       func(ctx context.Context, limit, page int, sort, sortOrder string) ([]domain.Venue, domain.PaginationMeta, error)
	getVenueFunc         func(ctx context.Context, id string) (*domain.Venue, error)
	getManagedVenuesFunc func(ctx context.Context, token, profileName string) ([]domain.Venue, error)
	createVenueFunc      func(ctx context.Context, token string, input holidaze.VenueInput) (*domain.Venue, error)
	editVenueFunc        func(ctx context.Context, token, id string, input holidaze.VenueInput) (*domain.Venue, error)
	deleteVenueFunc      func(ctx context.Context, token, id string) error

	createCalls int
	deleteCalls int
}

func (m *mockClient) ListVenues(ctx context.Context, limit, page int, sort, sortOrder string) ([]domain.Venue, domain.PaginationMeta, error) {
	return m.listVenuesFunc(ctx, limit, page, sort, sortOrder)
}

func (m *mockClient) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	return m.getVenueFunc(ctx, id)
}

func (m *mockClient) GetManagedVenues(ctx context.Context, token, profileName string) ([]domain.Venue, error) {
	return m.getManagedVenuesFunc(ctx, token, profileName)
}

func (m *mockClient) CreateVenue(ctx context.Context, token string, input holidaze.VenueInput) (*domain.Venue, error) {
	m.createCalls++
	return m.createVenueFunc(ctx, token, input)
}

func (m *mockClient) EditVenue(ctx context.Context, token, id string, input holidaze.VenueInput) (*domain.Venue, error) {
	return m.editVenueFunc(ctx, token, id, input)
}

func (m *mockClient) DeleteVenue(ctx context.Context, token, id string) error {
	m.deleteCalls++
	return m.deleteVenueFunc(ctx, token, id)
}

type mockSearcher struct {
	searchFunc func(ctx context.Context, q string, limit, page int) ([]domain.Venue, error)
}

func (m *mockSearcher) Search(ctx context.Context, q string, limit, page int) ([]domain.Venue, error) {
	return m.searchFunc(ctx, q, limit, page)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(client *mockClient, searcher Searcher) (*Service, *state.VenueCache, *state.ManagedVenues) {
	venueStore := state.NewVenueCache()
	managed := state.NewManagedVenues()
	svc := NewService(client, searcher, venueStore, managed, noopLogger{})
	return svc, venueStore, managed
}

func validData() models.VenueData {
	return models.VenueData{
		Name:      "Harbor Loft",
		Price:     200,
		MaxGuests: 6,
	}
}

func TestService_List_AppliesDefaults(t *testing.T) {
	client := &mockClient{
		listVenuesFunc: func(ctx context.Context, limit, page int, sort, sortOrder string) ([]domain.Venue, domain.PaginationMeta, error) {
			assert.Equal(t, domain.DefaultVenueListLimit, limit)
			assert.Equal(t, 1, page)
			assert.Equal(t, domain.DefaultVenueListSort, sort)
			assert.Equal(t, domain.DefaultVenueListOrder, sortOrder)
			return []domain.Venue{{ID: "v1", Name: "A"}}, domain.PaginationMeta{CurrentPage: 1, PageCount: 1}, nil
		},
	}
	svc, _, _ := newService(client, &mockSearcher{})

	resp, err := svc.List(context.Background(), &models.ListVenuesRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, 1, resp.Meta.CurrentPage)
}

func TestService_Get_ExposesDisabledDays(t *testing.T) {
	client := &mockClient{
		getVenueFunc: func(ctx context.Context, id string) (*domain.Venue, error) {
			return &domain.Venue{
				ID:        id,
				Name:      "Harbor Loft",
				Price:     200,
				MaxGuests: 6,
				Bookings: []domain.Booking{
					{ID: "b1", DateFrom: day(2026, 9, 10), DateTo: day(2026, 9, 12)},
				},
			}, nil
		},
	}
	svc, venueStore, _ := newService(client, &mockSearcher{})

	resp, err := svc.Get(context.Background(), "venue-1")

	require.NoError(t, err)
	// Оба конца диапазона занятости включены, день выселения тоже
	assert.Equal(t, []string{"2026-09-10", "2026-09-11", "2026-09-12"}, resp.DisabledDays)

	_, cached := venueStore.Get("venue-1")
	assert.True(t, cached)
}

func TestService_Get_NotFound(t *testing.T) {
	client := &mockClient{
		getVenueFunc: func(ctx context.Context, id string) (*domain.Venue, error) {
			return nil, holidaze.ErrNotFound
		},
	}
	svc, _, _ := newService(client, &mockSearcher{})

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_Search_EmptyQueryRejected(t *testing.T) {
	svc, _, _ := newService(&mockClient{}, &mockSearcher{})

	_, err := svc.Search(context.Background(), &models.SearchVenuesRequest{Query: "   "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Search_SupersededMapped(t *testing.T) {
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, q string, limit, page int) ([]domain.Venue, error) {
			return nil, search.ErrSuperseded
		},
	}
	svc, _, _ := newService(&mockClient{}, searcher)

	_, err := svc.Search(context.Background(), &models.SearchVenuesRequest{Query: "beach"})

	assert.ErrorIs(t, err, ErrSearchSuperseded)
}

func TestService_Search_Success(t *testing.T) {
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, q string, limit, page int) ([]domain.Venue, error) {
			assert.Equal(t, "beach house", q)
			assert.Equal(t, domain.DefaultSearchLimit, limit)
			return []domain.Venue{{ID: "v1", Name: "Beach House"}}, nil
		},
	}
	svc, _, _ := newService(&mockClient{}, searcher)

	resp, err := svc.Search(context.Background(), &models.SearchVenuesRequest{Query: " beach house "})

	require.NoError(t, err)
	require.Len(t, resp.Venues, 1)
}

func TestService_Create_AppearsInManagedCollection(t *testing.T) {
	client := &mockClient{
		createVenueFunc: func(ctx context.Context, token string, input holidaze.VenueInput) (*domain.Venue, error) {
			return &domain.Venue{ID: "venue-new", Name: input.Name, Price: input.Price, MaxGuests: input.MaxGuests}, nil
		},
	}
	svc, _, managed := newService(client, &mockSearcher{})

	resp, err := svc.Create(context.Background(), &models.CreateVenueRequest{
		Token:       "token-1",
		ProfileName: "marius",
		Data:        validData(),
	})

	require.NoError(t, err)
	assert.Equal(t, "venue-new", resp.ID)

	list := managed.Get("marius")
	require.Len(t, list, 1)
	assert.Equal(t, "venue-new", list[0].ID)
}

func TestService_Create_ValidationRejected_NoNetworkCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.VenueData)
	}{
		{name: "empty name", mutate: func(d *models.VenueData) { d.Name = "" }},
		{name: "zero price", mutate: func(d *models.VenueData) { d.Price = 0 }},
		{name: "zero max guests", mutate: func(d *models.VenueData) { d.MaxGuests = 0 }},
		{name: "name too long", mutate: func(d *models.VenueData) {
			d.Name = strings.Repeat("x", domain.MaxVenueNameLength+1)
		}},
		{name: "description too long", mutate: func(d *models.VenueData) {
			d.Description = strings.Repeat("x", domain.MaxDescriptionLength+1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			svc, _, _ := newService(client, &mockSearcher{})

			data := validData()
			tt.mutate(&data)

			_, err := svc.Create(context.Background(), &models.CreateVenueRequest{
				Token:       "token-1",
				ProfileName: "marius",
				Data:        data,
			})

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, client.createCalls)
		})
	}
}

func TestService_Edit_PreservesCachedBookings(t *testing.T) {
	client := &mockClient{
		editVenueFunc: func(ctx context.Context, token, id string, input holidaze.VenueInput) (*domain.Venue, error) {
			return &domain.Venue{ID: id, Name: input.Name, Price: input.Price, MaxGuests: input.MaxGuests}, nil
		},
	}
	svc, venueStore, managed := newService(client, &mockSearcher{})
	venueStore.Put(domain.Venue{
		ID: "venue-1", Name: "Old Name", Price: 100, MaxGuests: 4,
		Bookings: []domain.Booking{{ID: "b1", DateFrom: day(2026, 9, 10), DateTo: day(2026, 9, 12)}},
	})
	managed.Put("marius", []domain.Venue{{ID: "venue-1", Name: "Old Name"}})

	_, err := svc.Edit(context.Background(), &models.EditVenueRequest{
		Token:       "token-1",
		ProfileName: "marius",
		VenueID:     "venue-1",
		Data:        validData(),
	})

	require.NoError(t, err)

	cached, ok := venueStore.Get("venue-1")
	require.True(t, ok)
	assert.Equal(t, "Harbor Loft", cached.Name)
	require.Len(t, cached.Bookings, 1)

	list := managed.Get("marius")
	require.Len(t, list, 1)
	assert.Equal(t, "Harbor Loft", list[0].Name)
}

func TestService_Delete_RemovedFromBothStores(t *testing.T) {
	client := &mockClient{
		deleteVenueFunc: func(ctx context.Context, token, id string) error {
			assert.Equal(t, "venue-1", id)
			return nil
		},
	}
	svc, venueStore, managed := newService(client, &mockSearcher{})
	venueStore.Put(domain.Venue{ID: "venue-1"})
	managed.Put("marius", []domain.Venue{{ID: "venue-1"}})

	err := svc.Delete(context.Background(), &models.DeleteVenueRequest{
		Token:       "token-1",
		ProfileName: "marius",
		VenueID:     "venue-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, client.deleteCalls)

	_, ok := venueStore.Get("venue-1")
	assert.False(t, ok)
	assert.Empty(t, managed.Get("marius"))
}

func TestService_Delete_Unauthorized(t *testing.T) {
	client := &mockClient{
		deleteVenueFunc: func(ctx context.Context, token, id string) error {
			return holidaze.ErrUnauthorized
		},
	}
	svc, _, managed := newService(client, &mockSearcher{})
	managed.Put("marius", []domain.Venue{{ID: "venue-1"}})

	err := svc.Delete(context.Background(), &models.DeleteVenueRequest{
		Token:       "expired",
		ProfileName: "marius",
		VenueID:     "venue-1",
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
	require.Len(t, managed.Get("marius"), 1)
}
