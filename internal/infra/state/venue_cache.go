package state

import (
	"sync"
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// VenueCache хранит последние загруженные venues вместе с их бронированиями.
// Единственный владелец коллекции - сам кэш: все мутации идут через его
// методы либо после завершенного fetch, либо после успешной мутации на
// стороне API (оптимистичная реконсиляция, без повторной загрузки).
// Disabled-day set никогда не хранится - всегда выводится из коллекции.
type VenueCache struct {
	mu     sync.RWMutex
	venues map[string]*domain.Venue
}

// NewVenueCache создает пустой кэш venues
func NewVenueCache() *VenueCache {
	return &VenueCache{
		venues: make(map[string]*domain.Venue),
	}
}

// Put сохраняет venue после завершенного fetch, заменяя предыдущую версию
func (c *VenueCache) Put(v domain.Venue) {
	c.mu.Lock()
	copied := v
	copied.Bookings = append([]domain.Booking(nil), v.Bookings...)
	c.venues[v.ID] = &copied
	c.mu.Unlock()
}

// Get возвращает копию venue по ID
func (c *VenueCache) Get(id string) (domain.Venue, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.venues[id]
	if !ok {
		return domain.Venue{}, false
	}
	copied := *v
	copied.Bookings = append([]domain.Booking(nil), v.Bookings...)
	return copied, true
}

// Remove удаляет venue из кэша (после успешного DELETE на стороне API)
func (c *VenueCache) Remove(id string) {
	c.mu.Lock()
	delete(c.venues, id)
	c.mu.Unlock()
}

// AddBooking добавляет созданное бронирование в коллекцию venue,
// чтобы disabled-day set и списки оставались согласованными без reload.
// Если venue не закэширован, реконсилировать нечего.
func (c *VenueCache) AddBooking(venueID string, b domain.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.venues[venueID]
	if !ok {
		return
	}
	v.Bookings = append(v.Bookings, b)
}

// UpdateBooking заменяет бронирование в коллекции venue по ID
func (c *VenueCache) UpdateBooking(venueID string, b domain.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.venues[venueID]
	if !ok {
		return
	}
	for i := range v.Bookings {
		if v.Bookings[i].ID == b.ID {
			v.Bookings[i] = b
			return
		}
	}
}

// RemoveBooking удаляет бронирование из коллекции venue по ID
func (c *VenueCache) RemoveBooking(venueID, bookingID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.venues[venueID]
	if !ok {
		return
	}
	for i := range v.Bookings {
		if v.Bookings[i].ID == bookingID {
			v.Bookings = append(v.Bookings[:i], v.Bookings[i+1:]...)
			return
		}
	}
}

// DisabledDays возвращает производный disabled-day set для venue.
// Пустой set для незакэшированного venue.
func (c *VenueCache) DisabledDays(venueID string) map[time.Time]struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.venues[venueID]
	if !ok {
		return map[time.Time]struct{}{}
	}
	return domain.DisabledDays(v.Bookings)
}
