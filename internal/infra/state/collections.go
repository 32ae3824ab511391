package state

import (
	"sync"
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// BookingList хранит бронирования пользователей по имени профиля.
// Мутируется только после завершенного fetch или успешной мутации API.
type BookingList struct {
	mu        sync.RWMutex
	byProfile map[string][]domain.Booking
}

// NewBookingList создает пустую коллекцию бронирований
func NewBookingList() *BookingList {
	return &BookingList{
		byProfile: make(map[string][]domain.Booking),
	}
}

// Put заменяет коллекцию профиля результатом fetch
func (l *BookingList) Put(profileName string, bookings []domain.Booking) {
	l.mu.Lock()
	l.byProfile[profileName] = append([]domain.Booking(nil), bookings...)
	l.mu.Unlock()
}

// Add добавляет созданное бронирование в коллекцию профиля
func (l *BookingList) Add(profileName string, b domain.Booking) {
	l.mu.Lock()
	l.byProfile[profileName] = append(l.byProfile[profileName], b)
	l.mu.Unlock()
}

// Update заменяет бронирование по ID, сохраняя вложенный venue прежней записи
// (PUT /bookings/{id} не возвращает venue)
func (l *BookingList) Update(profileName string, b domain.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bookings := l.byProfile[profileName]
	for i := range bookings {
		if bookings[i].ID == b.ID {
			if b.Venue == nil {
				b.Venue = bookings[i].Venue
			}
			if b.VenueID == "" {
				b.VenueID = bookings[i].VenueID
			}
			bookings[i] = b
			return
		}
	}
}

// Remove удаляет бронирование по ID
func (l *BookingList) Remove(profileName, bookingID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bookings := l.byProfile[profileName]
	for i := range bookings {
		if bookings[i].ID == bookingID {
			l.byProfile[profileName] = append(bookings[:i], bookings[i+1:]...)
			return
		}
	}
}

// Get возвращает копию коллекции профиля
func (l *BookingList) Get(profileName string) []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Booking(nil), l.byProfile[profileName]...)
}

// Find возвращает бронирование профиля по ID
func (l *BookingList) Find(profileName, bookingID string) (domain.Booking, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, b := range l.byProfile[profileName] {
		if b.ID == bookingID {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// Upcoming возвращает бронирования, которые еще не закончились
func (l *BookingList) Upcoming(profileName string, now time.Time) []domain.Booking {
	return l.filter(profileName, func(b *domain.Booking) bool { return b.IsUpcoming(now) })
}

// Past возвращает завершившиеся бронирования
func (l *BookingList) Past(profileName string, now time.Time) []domain.Booking {
	return l.filter(profileName, func(b *domain.Booking) bool { return b.IsPast(now) })
}

func (l *BookingList) filter(profileName string, keep func(*domain.Booking) bool) []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]domain.Booking, 0)
	for _, b := range l.byProfile[profileName] {
		if keep(&b) {
			result = append(result, b)
		}
	}
	return result
}

// ManagedVenues хранит venues, принадлежащие профилю-менеджеру.
// Создание нового venue реконсилируется явным Add от вызывающей операции,
// без широковещательных событий.
type ManagedVenues struct {
	mu        sync.RWMutex
	byProfile map[string][]domain.Venue
}

// NewManagedVenues создает пустую коллекцию
func NewManagedVenues() *ManagedVenues {
	return &ManagedVenues{
		byProfile: make(map[string][]domain.Venue),
	}
}

// Put заменяет коллекцию профиля результатом fetch
func (m *ManagedVenues) Put(profileName string, venues []domain.Venue) {
	m.mu.Lock()
	m.byProfile[profileName] = append([]domain.Venue(nil), venues...)
	m.mu.Unlock()
}

// Add добавляет созданный venue в коллекцию менеджера
func (m *ManagedVenues) Add(profileName string, v domain.Venue) {
	m.mu.Lock()
	m.byProfile[profileName] = append(m.byProfile[profileName], v)
	m.mu.Unlock()
}

// Update заменяет venue по ID
func (m *ManagedVenues) Update(profileName string, v domain.Venue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	venues := m.byProfile[profileName]
	for i := range venues {
		if venues[i].ID == v.ID {
			venues[i] = v
			return
		}
	}
}

// Remove удаляет venue по ID
func (m *ManagedVenues) Remove(profileName, venueID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	venues := m.byProfile[profileName]
	for i := range venues {
		if venues[i].ID == venueID {
			m.byProfile[profileName] = append(venues[:i], venues[i+1:]...)
			return
		}
	}
}

// Get возвращает копию коллекции профиля
func (m *ManagedVenues) Get(profileName string) []domain.Venue {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Venue(nil), m.byProfile[profileName]...)
}
