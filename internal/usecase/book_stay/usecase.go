package book_stay

import (
	"context"
	"errors"
	"fmt"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	holidazeClient "github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

// UseCase use case бронирования venue: валидация выбранного диапазона и
// количества гостей, единственный сетевой вызов создания бронирования,
// реконсиляция локальных коллекций при успехе.
type UseCase struct {
	client   HolidazeClient
	venues   VenueStore
	bookings BookingStore
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client HolidazeClient,
	venues VenueStore,
	bookings BookingStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:   client,
		venues:   venues,
		bookings: bookings,
		logger:   logger,
	}
}

// Execute выполняет бронирование.
// Порядок валидации фиксирован: сначала диапазон дат, затем количество
// гостей; первая провалившаяся проверка определяет сообщение об ошибке.
// Валидационные ошибки никогда не доходят до сетевого слоя.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookStay: profile=%s venue=%s picks=%d guests=%d",
		req.ProfileName, req.VenueID, len(req.Picks), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookStay: validation failed: %v", err)
		return nil, err
	}

	// 2. Диапазон дат: прогоняем сырые клики через машину выбора.
	// Одиночный клик не дает committed-диапазона.
	from, to, err := commitRange(req.Picks)
	if err != nil {
		uc.logger.Warn("BookStay: no committed range for venue=%s", req.VenueID)
		return nil, err
	}

	// Диапазон в один день - это ноль ночей, бронировать нечего
	if domain.Nights(from, to) == 0 {
		uc.logger.Warn("BookStay: zero-night range %s..%s for venue=%s",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), req.VenueID)
		return nil, ErrNoDateRange
	}

	// 3. Получаем venue: из кэша, если деталка уже открывалась, иначе
	// одним чтением из API (это fetch представления, не submit)
	venue, ok := uc.venues.Get(req.VenueID)
	if !ok {
		fetched, err := uc.client.GetVenue(ctx, req.VenueID)
		if err != nil {
			if errors.Is(err, holidazeClient.ErrNotFound) {
				uc.logger.Warn("BookStay: venue id=%s not found", req.VenueID)
				return nil, ErrVenueNotFound
			}
			uc.logger.Error("BookStay: failed to get venue id=%s: %v", req.VenueID, err)
			return nil, fmt.Errorf("%w: failed to get venue: %v", ErrRequestFailed, err)
		}
		uc.venues.Put(*fetched)
		venue = *fetched
	}

	// 4. Количество гостей против ограничения venue
	if req.Guests < domain.MinGuests || req.Guests > venue.MaxGuests {
		uc.logger.Warn("BookStay: guests=%d out of bounds (max=%d) for venue=%s",
			req.Guests, venue.MaxGuests, req.VenueID)
		return nil, &GuestsOutOfBoundsError{MaxGuests: venue.MaxGuests}
	}

	// 5. Единственный сетевой вызов submit-действия. Без ретраев;
	// при ошибке локальные коллекции не мутируются.
	created, err := uc.client.CreateBooking(ctx, req.Token, holidazeClient.BookingInput{
		DateFrom: from,
		DateTo:   to,
		Guests:   req.Guests,
		VenueID:  req.VenueID,
	})
	if err != nil {
		if errors.Is(err, holidazeClient.ErrUnauthorized) {
			uc.logger.Warn("BookStay: unauthorized create for profile=%s", req.ProfileName)
			return nil, ErrUnauthorized
		}
		uc.logger.Error("BookStay: create booking failed for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	// 6. Реконсилируем локальные коллекции, чтобы disabled-day set и
	// списки профиля оставались согласованными без перезагрузки
	uc.venues.AddBooking(req.VenueID, *created)
	withVenue := *created
	withVenue.Venue = &venue
	uc.bookings.Add(req.ProfileName, withVenue)

	nights := domain.Nights(from, to)
	uc.logger.Info("BookStay: created booking id=%s venue=%s nights=%d", created.ID, req.VenueID, nights)

	return &Response{
		Booking:    *created,
		Nights:     nights,
		TotalPrice: domain.Total(from, to, venue.Price),
	}, nil
}
