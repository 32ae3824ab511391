package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/infra/state"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
	"github.com/mariusjb/holidaze-gateway/internal/service/bookings/models"
)

type mockClient struct {
	getBookingsFunc      func(ctx context.Context, token, profileName string) ([]domain.Booking, error)
	getManagedVenuesFunc func(ctx context.Context, token, profileName string) ([]domain.Venue, error)
	getVenueFunc         func(ctx context.Context, id string) (*domain.Venue, error)
	updateBookingFunc    func(ctx context.Context, token, id string, patch holidaze.BookingPatch) (*domain.Booking, error)
	deleteBookingFunc    func(ctx context.Context, token, id string) error

	updateCalls int
	deleteCalls int
}

func (m *mockClient) GetBookings(ctx context.Context, token, profileName string) ([]domain.Booking, error) {
	return m.getBookingsFunc(ctx, token, profileName)
}

func (m *mockClient) GetManagedVenues(ctx context.Context, token, profileName string) ([]domain.Venue, error) {
	return m.getManagedVenuesFunc(ctx, token, profileName)
}

func (m *mockClient) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	return m.getVenueFunc(ctx, id)
}

func (m *mockClient) UpdateBooking(ctx context.Context, token, id string, patch holidaze.BookingPatch) (*domain.Booking, error) {
	m.updateCalls++
	return m.updateBookingFunc(ctx, token, id, patch)
}

func (m *mockClient) DeleteBooking(ctx context.Context, token, id string) error {
	m.deleteCalls++
	return m.deleteBookingFunc(ctx, token, id)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testVenue() domain.Venue {
	return domain.Venue{
		ID:        "venue-1",
		Name:      "Harbor Loft",
		Price:     200,
		MaxGuests: 6,
	}
}

func newService(client *mockClient) (*Service, *state.BookingList, *state.VenueCache) {
	bookingStore := state.NewBookingList()
	venueStore := state.NewVenueCache()
	svc := NewService(client, bookingStore, venueStore, fixedTime{now: day(2026, 9, 1)}, noopLogger{})
	return svc, bookingStore, venueStore
}

func TestService_GetUserBookings_SplitsUpcomingAndPast(t *testing.T) {
	venue := testVenue()
	client := &mockClient{
		getBookingsFunc: func(ctx context.Context, token, profileName string) ([]domain.Booking, error) {
			assert.Equal(t, "token-1", token)
			assert.Equal(t, "marius", profileName)
			return []domain.Booking{
				{ID: "past-1", VenueID: venue.ID, DateFrom: day(2026, 7, 1), DateTo: day(2026, 7, 4), Guests: 2, Venue: &venue},
				{ID: "future-1", VenueID: venue.ID, DateFrom: day(2026, 10, 1), DateTo: day(2026, 10, 3), Guests: 2, Venue: &venue},
				// Выселение сегодня - все еще предстоящее
				{ID: "checkout-today", VenueID: venue.ID, DateFrom: day(2026, 8, 30), DateTo: day(2026, 9, 1), Guests: 2, Venue: &venue},
			}, nil
		},
	}
	svc, _, _ := newService(client)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Token:       "token-1",
		ProfileName: "marius",
	})

	require.NoError(t, err)
	require.Len(t, resp.Upcoming, 2)
	require.Len(t, resp.Past, 1)
	assert.Equal(t, "past-1", resp.Past[0].ID)
	assert.Equal(t, "future-1", resp.Upcoming[0].ID)
	assert.Equal(t, "checkout-today", resp.Upcoming[1].ID)
	assert.Equal(t, 2, resp.Upcoming[0].Nights)
	assert.Equal(t, 400.0, resp.Upcoming[0].TotalPrice)
}

func TestService_GetUserBookings_RequiresToken(t *testing.T) {
	client := &mockClient{}
	svc, _, _ := newService(client)

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		ProfileName: "marius",
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_GetUserBookings_Unauthorized(t *testing.T) {
	client := &mockClient{
		getBookingsFunc: func(ctx context.Context, token, profileName string) ([]domain.Booking, error) {
			return nil, holidaze.ErrUnauthorized
		},
	}
	svc, _, _ := newService(client)

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Token:       "expired",
		ProfileName: "marius",
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_GetManagerBookings_GroupsByVenue(t *testing.T) {
	client := &mockClient{
		getManagedVenuesFunc: func(ctx context.Context, token, profileName string) ([]domain.Venue, error) {
			return []domain.Venue{
				{
					ID:        "venue-1",
					Name:      "Harbor Loft",
					Price:     200,
					MaxGuests: 6,
					Bookings: []domain.Booking{
						{ID: "b1", DateFrom: day(2026, 9, 10), DateTo: day(2026, 9, 12), Guests: 2},
					},
				},
				{ID: "venue-2", Name: "Hillside Hut", Price: 90, MaxGuests: 2},
			}, nil
		},
	}
	svc, _, _ := newService(client)

	resp, err := svc.GetManagerBookings(context.Background(), &models.GetManagerBookingsRequest{
		Token:       "token-1",
		ProfileName: "marius",
	})

	require.NoError(t, err)
	require.Len(t, resp.Venues, 2)
	require.Len(t, resp.Venues[0].Bookings, 1)
	// Вложенный venue привязан - стоимость посчитана по его цене
	assert.Equal(t, 400.0, resp.Venues[0].Bookings[0].TotalPrice)
	assert.Empty(t, resp.Venues[1].Bookings)
}

func TestService_Update_Success_ReconcilesBothStores(t *testing.T) {
	venue := testVenue()
	client := &mockClient{
		updateBookingFunc: func(ctx context.Context, token, id string, patch holidaze.BookingPatch) (*domain.Booking, error) {
			assert.Equal(t, "booking-1", id)
			assert.Equal(t, day(2026, 9, 20), patch.DateFrom)
			assert.Equal(t, day(2026, 9, 23), patch.DateTo)
			return &domain.Booking{
				ID:       id,
				VenueID:  venue.ID,
				DateFrom: patch.DateFrom,
				DateTo:   patch.DateTo,
				Guests:   patch.Guests,
			}, nil
		},
	}
	svc, bookingStore, venueStore := newService(client)
	venueStore.Put(venue)
	bookingStore.Put("marius", []domain.Booking{
		{ID: "booking-1", VenueID: venue.ID, DateFrom: day(2026, 9, 10), DateTo: day(2026, 9, 12), Guests: 2, Venue: &venue},
	})

	resp, err := svc.Update(context.Background(), &models.UpdateBookingRequest{
		Token:       "token-1",
		ProfileName: "marius",
		BookingID:   "booking-1",
		Picks:       []time.Time{day(2026, 9, 23), day(2026, 9, 20)},
		Guests:      3,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 600.0, resp.TotalPrice)

	stored, ok := bookingStore.Find("marius", "booking-1")
	require.True(t, ok)
	assert.Equal(t, day(2026, 9, 20), stored.DateFrom)

	// Disabled-day set следует за новым диапазоном
	disabled := venueStore.DisabledDays(venue.ID)
	assert.Contains(t, disabled, domain.DayKey(day(2026, 9, 21)))
	assert.NotContains(t, disabled, domain.DayKey(day(2026, 9, 10)))
}

func TestService_Update_GuestsOutOfBounds_NoNetworkCall(t *testing.T) {
	venue := testVenue()
	client := &mockClient{}
	svc, bookingStore, venueStore := newService(client)
	venueStore.Put(venue)
	bookingStore.Put("marius", []domain.Booking{
		{ID: "booking-1", VenueID: venue.ID, DateFrom: day(2026, 9, 10), DateTo: day(2026, 9, 12), Guests: 2, Venue: &venue},
	})

	_, err := svc.Update(context.Background(), &models.UpdateBookingRequest{
		Token:       "token-1",
		ProfileName: "marius",
		BookingID:   "booking-1",
		Picks:       []time.Time{day(2026, 9, 20), day(2026, 9, 23)},
		Guests:      7,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, client.updateCalls)
}

func TestService_Update_SinglePick_NoNetworkCall(t *testing.T) {
	venue := testVenue()
	client := &mockClient{}
	svc, bookingStore, _ := newService(client)
	bookingStore.Put("marius", []domain.Booking{
		{ID: "booking-1", VenueID: venue.ID, Venue: &venue},
	})

	_, err := svc.Update(context.Background(), &models.UpdateBookingRequest{
		Token:       "token-1",
		ProfileName: "marius",
		BookingID:   "booking-1",
		Picks:       []time.Time{day(2026, 9, 20)},
		Guests:      2,
	})

	assert.ErrorIs(t, err, ErrNoDateRange)
	assert.Equal(t, 0, client.updateCalls)
}

func TestService_Update_BookingNotFound(t *testing.T) {
	client := &mockClient{}
	svc, _, _ := newService(client)

	_, err := svc.Update(context.Background(), &models.UpdateBookingRequest{
		Token:       "token-1",
		ProfileName: "marius",
		BookingID:   "missing",
		Picks:       []time.Time{day(2026, 9, 20), day(2026, 9, 23)},
		Guests:      2,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Delete_Success_FreesDisabledDays(t *testing.T) {
	venue := testVenue()
	booking := domain.Booking{
		ID:       "booking-1",
		VenueID:  venue.ID,
		DateFrom: day(2026, 9, 10),
		DateTo:   day(2026, 9, 12),
		Guests:   2,
		Venue:    &venue,
	}
	client := &mockClient{
		deleteBookingFunc: func(ctx context.Context, token, id string) error {
			assert.Equal(t, "booking-1", id)
			return nil
		},
	}
	svc, bookingStore, venueStore := newService(client)
	venueStore.Put(venue)
	venueStore.AddBooking(venue.ID, booking)
	bookingStore.Put("marius", []domain.Booking{booking})

	require.Contains(t, venueStore.DisabledDays(venue.ID), domain.DayKey(day(2026, 9, 11)))

	err := svc.Delete(context.Background(), &models.DeleteBookingRequest{
		Token:       "token-1",
		ProfileName: "marius",
		BookingID:   "booking-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, client.deleteCalls)

	_, ok := bookingStore.Find("marius", "booking-1")
	assert.False(t, ok)
	assert.NotContains(t, venueStore.DisabledDays(venue.ID), domain.DayKey(day(2026, 9, 11)))
}

func TestService_Delete_RequestFailed_NoLocalMutation(t *testing.T) {
	venue := testVenue()
	booking := domain.Booking{ID: "booking-1", VenueID: venue.ID, DateFrom: day(2026, 9, 10), DateTo: day(2026, 9, 12), Venue: &venue}
	client := &mockClient{
		deleteBookingFunc: func(ctx context.Context, token, id string) error {
			return holidaze.ErrRequestFailed
		},
	}
	svc, bookingStore, venueStore := newService(client)
	venueStore.Put(venue)
	venueStore.AddBooking(venue.ID, booking)
	bookingStore.Put("marius", []domain.Booking{booking})

	err := svc.Delete(context.Background(), &models.DeleteBookingRequest{
		Token:       "token-1",
		ProfileName: "marius",
		BookingID:   "booking-1",
	})

	assert.ErrorIs(t, err, ErrRequestFailed)

	_, ok := bookingStore.Find("marius", "booking-1")
	assert.True(t, ok)
	assert.Contains(t, venueStore.DisabledDays(venue.ID), domain.DayKey(day(2026, 9, 11)))
}
