package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVenueCacheDisabledDaysGrowOnAddBooking(t *testing.T) {
	cache := NewVenueCache()
	cache.Put(domain.Venue{
		ID:    "v1",
		Price: 149,
		Bookings: []domain.Booking{
			{ID: "b1", VenueID: "v1", DateFrom: date(2025, time.October, 10), DateTo: date(2025, time.October, 12), Guests: 2},
		},
	})

	before := cache.DisabledDays("v1")
	require.Len(t, before, 3)

	cache.AddBooking("v1", domain.Booking{
		ID: "b2", VenueID: "v1",
		DateFrom: date(2025, time.October, 13),
		DateTo:   date(2025, time.October, 15),
		Guests:   2,
	})

	after := cache.DisabledDays("v1")
	assert.Len(t, after, 6)
	for day := range before {
		_, ok := after[day]
		assert.True(t, ok)
	}
	assert.True(t, domain.IsDayDisabled(after, date(2025, time.October, 14)))
}

func TestVenueCacheRemoveBookingShrinksDisabledDays(t *testing.T) {
	cache := NewVenueCache()
	cache.Put(domain.Venue{
		ID: "v1",
		Bookings: []domain.Booking{
			{ID: "b1", DateFrom: date(2025, time.October, 10), DateTo: date(2025, time.October, 12)},
			{ID: "b2", DateFrom: date(2025, time.October, 20), DateTo: date(2025, time.October, 21)},
		},
	})

	cache.RemoveBooking("v1", "b1")

	disabled := cache.DisabledDays("v1")
	assert.Len(t, disabled, 2)
	assert.False(t, domain.IsDayDisabled(disabled, date(2025, time.October, 11)))
	assert.True(t, domain.IsDayDisabled(disabled, date(2025, time.October, 20)))
}

func TestVenueCacheGetReturnsCopy(t *testing.T) {
	cache := NewVenueCache()
	cache.Put(domain.Venue{ID: "v1", Bookings: []domain.Booking{{ID: "b1"}}})

	got, ok := cache.Get("v1")
	require.True(t, ok)
	got.Bookings[0].ID = "mutated"

	fresh, _ := cache.Get("v1")
	assert.Equal(t, "b1", fresh.Bookings[0].ID, "callers must not be able to mutate the cached collection")
}

func TestVenueCacheUncachedVenue(t *testing.T) {
	cache := NewVenueCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, cache.DisabledDays("missing"))

	// Reconciling against an uncached venue is a no-op, not a panic.
	cache.AddBooking("missing", domain.Booking{ID: "b1"})
	cache.RemoveBooking("missing", "b1")
}

func TestBookingListUpcomingPastSplit(t *testing.T) {
	now := date(2025, time.October, 14)
	list := NewBookingList()
	list.Put("kari", []domain.Booking{
		{ID: "old", DateFrom: date(2025, time.September, 1), DateTo: date(2025, time.September, 3)},
		{ID: "current", DateFrom: date(2025, time.October, 13), DateTo: date(2025, time.October, 15)},
		{ID: "future", DateFrom: date(2025, time.November, 1), DateTo: date(2025, time.November, 4)},
	})

	upcoming := list.Upcoming("kari", now)
	past := list.Past("kari", now)

	require.Len(t, upcoming, 2)
	require.Len(t, past, 1)
	assert.Equal(t, "old", past[0].ID)
}

func TestBookingListRemoveReconciles(t *testing.T) {
	list := NewBookingList()
	list.Put("kari", []domain.Booking{{ID: "b1"}, {ID: "b2"}})

	list.Remove("kari", "b1")

	bookings := list.Get("kari")
	require.Len(t, bookings, 1)
	assert.Equal(t, "b2", bookings[0].ID)
}

func TestBookingListUpdateKeepsEmbeddedVenue(t *testing.T) {
	venue := &domain.Venue{ID: "v1", Name: "Seaside Cabin"}
	list := NewBookingList()
	list.Put("kari", []domain.Booking{
		{ID: "b1", VenueID: "v1", Venue: venue, Guests: 2},
	})

	// The update response carries no venue expansion.
	list.Update("kari", domain.Booking{ID: "b1", Guests: 3})

	got, ok := list.Find("kari", "b1")
	require.True(t, ok)
	assert.Equal(t, 3, got.Guests)
	require.NotNil(t, got.Venue)
	assert.Equal(t, "Seaside Cabin", got.Venue.Name)
	assert.Equal(t, "v1", got.VenueID)
}

func TestManagedVenuesAddAndRemove(t *testing.T) {
	m := NewManagedVenues()
	m.Put("ola", []domain.Venue{{ID: "v1"}})

	m.Add("ola", domain.Venue{ID: "v2", Name: "New Cabin"})
	require.Len(t, m.Get("ola"), 2)

	m.Remove("ola", "v1")
	venues := m.Get("ola")
	require.Len(t, venues, 1)
	assert.Equal(t, "v2", venues[0].ID)
}
