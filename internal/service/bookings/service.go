package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	holidazeClient "github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
	"github.com/mariusjb/holidaze-gateway/internal/selection"
	"github.com/mariusjb/holidaze-gateway/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями профиля.
// Все чтения идут напрямую из API, локальные коллекции обновляются
// после каждого успешного мутирующего вызова - без перезагрузки списка.
type Service struct {
	client       HolidazeClient
	bookingStore BookingStore
	venueStore   VenueStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	client HolidazeClient,
	bookingStore BookingStore,
	venueStore VenueStore,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		bookingStore: bookingStore,
		venueStore:   venueStore,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUserBookings получает бронирования профиля вместе с данными venue
// и разделяет их на предстоящие и прошедшие. Бронирование с выселением
// сегодня или позже считается предстоящим.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.UserBookingsResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for profile=%s", req.ProfileName)

	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("GetUserBookings: %v", err)
		return nil, err
	}

	bookings, err := s.client.GetBookings(ctx, req.Token, req.ProfileName)
	if err != nil {
		return nil, s.mapClientError("GetUserBookings", req.ProfileName, err)
	}

	// Свежий список замещает локальную коллекцию целиком
	s.bookingStore.Put(req.ProfileName, bookings)

	now := s.timeProvider.Now()
	resp := &models.UserBookingsResponse{
		Upcoming: models.FromDomainBookingList(s.bookingStore.Upcoming(req.ProfileName, now)),
		Past:     models.FromDomainBookingList(s.bookingStore.Past(req.ProfileName, now)),
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for profile=%s (%d upcoming, %d past)",
		len(bookings), req.ProfileName, len(resp.Upcoming), len(resp.Past))
	return resp, nil
}

// GetManagerBookings получает все venue менеджера вместе с их
// бронированиями, сгруппированными по venue
func (s *Service) GetManagerBookings(ctx context.Context, req *models.GetManagerBookingsRequest) (*models.ManagerBookingsResponse, error) {
	s.logger.Info("GetManagerBookings: fetching managed venues for profile=%s", req.ProfileName)

	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("GetManagerBookings: %v", err)
		return nil, err
	}

	venues, err := s.client.GetManagedVenues(ctx, req.Token, req.ProfileName)
	if err != nil {
		return nil, s.mapClientError("GetManagerBookings", req.ProfileName, err)
	}

	groups := make([]models.VenueBookingsGroup, 0, len(venues))
	for i := range venues {
		v := venues[i]
		// Бронирования venue приходят без вложенного venue - привязываем
		// его для расчета стоимости
		for j := range v.Bookings {
			v.Bookings[j].Venue = &venues[i]
		}
		groups = append(groups, models.VenueBookingsGroup{
			Venue:    models.FromDomainVenueSummary(v),
			Bookings: models.FromDomainBookingList(v.Bookings),
		})
	}

	s.logger.Info("GetManagerBookings: fetched %d venues for profile=%s", len(venues), req.ProfileName)
	return &models.ManagerBookingsResponse{Venues: groups}, nil
}

// Update изменяет даты и количество гостей существующего бронирования.
// Валидация повторяет создание: сначала диапазон, затем гости; при
// успехе обе локальные коллекции реконсилируются.
func (s *Service) Update(ctx context.Context, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: booking id=%s for profile=%s", req.BookingID, req.ProfileName)

	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("Update: %v", err)
		return nil, err
	}
	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	existing, ok := s.bookingStore.Find(req.ProfileName, req.BookingID)
	if !ok {
		s.logger.Warn("Update: booking id=%s not found locally for profile=%s", req.BookingID, req.ProfileName)
		return nil, ErrBookingNotFound
	}

	from, to, ok := commitRange(req.Picks)
	if !ok || domain.Nights(from, to) == 0 {
		s.logger.Warn("Update: no committed range for booking id=%s", req.BookingID)
		return nil, ErrNoDateRange
	}

	venue, err := s.venueForBooking(ctx, &existing)
	if err != nil {
		return nil, err
	}

	if req.Guests < domain.MinGuests || req.Guests > venue.MaxGuests {
		s.logger.Warn("Update: guests=%d out of bounds (max=%d) for booking id=%s",
			req.Guests, venue.MaxGuests, req.BookingID)
		return nil, fmt.Errorf("%w: number of guests must be between 1 and %d", ErrInvalidInput, venue.MaxGuests)
	}

	updated, err := s.client.UpdateBooking(ctx, req.Token, req.BookingID, holidazeClient.BookingPatch{
		DateFrom: from,
		DateTo:   to,
		Guests:   req.Guests,
	})
	if err != nil {
		return nil, s.mapClientError("Update", req.ProfileName, err)
	}

	// Реконсилируем обе коллекции, disabled-day set venue следует за ними
	withVenue := *updated
	withVenue.Venue = venue
	if withVenue.VenueID == "" {
		withVenue.VenueID = venue.ID
	}
	s.bookingStore.Update(req.ProfileName, withVenue)
	s.venueStore.UpdateBooking(venue.ID, withVenue)

	s.logger.Info("Update: successfully updated booking id=%s", req.BookingID)
	resp := models.FromDomainBooking(withVenue)
	return &resp, nil
}

// Delete отменяет бронирование. Один сетевой вызов; при успехе
// бронирование исчезает из списка профиля, а его дни освобождаются
// в disabled-day set venue.
func (s *Service) Delete(ctx context.Context, req *models.DeleteBookingRequest) error {
	s.logger.Info("Delete: booking id=%s for profile=%s", req.BookingID, req.ProfileName)

	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("Delete: %v", err)
		return err
	}
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	existing, ok := s.bookingStore.Find(req.ProfileName, req.BookingID)
	if !ok {
		s.logger.Warn("Delete: booking id=%s not found locally for profile=%s", req.BookingID, req.ProfileName)
		return ErrBookingNotFound
	}

	if err := s.client.DeleteBooking(ctx, req.Token, req.BookingID); err != nil {
		return s.mapClientError("Delete", req.ProfileName, err)
	}

	s.bookingStore.Remove(req.ProfileName, req.BookingID)
	s.venueStore.RemoveBooking(existing.VenueID, req.BookingID)

	s.logger.Info("Delete: successfully deleted booking id=%s", req.BookingID)
	return nil
}

// Вспомогательные методы

// venueForBooking возвращает venue бронирования: вложенный, из кэша
// или одним чтением из API
func (s *Service) venueForBooking(ctx context.Context, b *domain.Booking) (*domain.Venue, error) {
	if b.Venue != nil {
		return b.Venue, nil
	}

	if cached, ok := s.venueStore.Get(b.VenueID); ok {
		return &cached, nil
	}

	venue, err := s.client.GetVenue(ctx, b.VenueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrNotFound) {
			s.logger.Warn("venueForBooking: venue id=%s not found", b.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("venueForBooking: failed to get venue id=%s: %v", b.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrRequestFailed, err)
	}
	s.venueStore.Put(*venue)
	return venue, nil
}

// mapClientError переводит ошибки клиента API в ошибки сервиса
func (s *Service) mapClientError(op, profileName string, err error) error {
	switch {
	case errors.Is(err, holidazeClient.ErrUnauthorized):
		s.logger.Warn("%s: unauthorized for profile=%s", op, profileName)
		return ErrUnauthorized
	case errors.Is(err, holidazeClient.ErrNotFound):
		s.logger.Warn("%s: not found for profile=%s", op, profileName)
		return ErrBookingNotFound
	default:
		s.logger.Error("%s: request failed for profile=%s: %v", op, profileName, err)
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}

// requireAuth проверяет обязательные поля авторизованного запроса
func requireAuth(token, profileName string) error {
	if profileName == "" {
		return fmt.Errorf("%w: profileName is required", ErrInvalidInput)
	}
	if token == "" {
		return ErrUnauthorized
	}
	return nil
}

// commitRange прогоняет сырые клики календаря через машину выбора
func commitRange(picks []time.Time) (from, to time.Time, ok bool) {
	m := selection.New()
	for _, p := range picks {
		m.Pick(p)
	}
	return m.Committed()
}
