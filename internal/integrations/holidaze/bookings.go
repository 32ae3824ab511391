package holidaze

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// BookingInput данные для создания бронирования.
// Даты сериализуются в RFC 3339, как их отправлял фронтенд.
type BookingInput struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	VenueID  string    `json:"venueId"`
}

// BookingPatch изменяемые поля существующего бронирования
type BookingPatch struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
}

// GetBookings получает бронирования профиля вместе с данными venue
func (c *Client) GetBookings(ctx context.Context, token, profileName string) ([]domain.Booking, error) {
	query := url.Values{}
	query.Set("_venue", "true")

	var resp struct {
		Data []bookingDTO `json:"data"`
	}
	path := "/holidaze/profiles/" + url.PathEscape(profileName) + "/bookings"
	if err := c.do(ctx, "GetBookings", http.MethodGet, path, query, token, nil, &resp); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(resp.Data))
	for i := range resp.Data {
		bookings = append(bookings, resp.Data[i].toDomain())
	}
	return bookings, nil
}

// CreateBooking создает бронирование для аутентифицированного пользователя
func (c *Client) CreateBooking(ctx context.Context, token string, input BookingInput) (*domain.Booking, error) {
	var resp struct {
		Data bookingDTO `json:"data"`
	}
	if err := c.do(ctx, "CreateBooking", http.MethodPost, "/holidaze/bookings", nil, token, input, &resp); err != nil {
		return nil, err
	}

	booking := resp.Data.toDomain()
	if booking.VenueID == "" {
		booking.VenueID = input.VenueID
	}
	c.log.Info("CreateBooking: created booking id=%s venue=%s guests=%d", booking.ID, booking.VenueID, booking.Guests)
	return &booking, nil
}

// UpdateBooking обновляет даты и количество гостей существующего бронирования
func (c *Client) UpdateBooking(ctx context.Context, token, id string, patch BookingPatch) (*domain.Booking, error) {
	var resp struct {
		Data bookingDTO `json:"data"`
	}
	if err := c.do(ctx, "UpdateBooking", http.MethodPut, "/holidaze/bookings/"+url.PathEscape(id), nil, token, patch, &resp); err != nil {
		return nil, err
	}

	booking := resp.Data.toDomain()
	return &booking, nil
}

// DeleteBooking удаляет бронирование по ID. Успешный ответ - 204 без тела.
func (c *Client) DeleteBooking(ctx context.Context, token, id string) error {
	return c.do(ctx, "DeleteBooking", http.MethodDelete, "/holidaze/bookings/"+url.PathEscape(id), nil, token, nil, nil)
}
