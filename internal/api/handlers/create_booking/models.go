package create_booking

import (
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/session"
	bookStay "github.com/mariusjb/holidaze-gateway/internal/usecase/book_stay"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID  string `json:"venueId"`
	DateFrom string `json:"dateFrom"` // "2026-09-10"
	DateTo   string `json:"dateTo"`   // "2026-09-13"
	Guests   int    `json:"guests"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string  `json:"id"`
	VenueID    string  `json:"venueId"`
	DateFrom   string  `json:"dateFrom"`
	DateTo     string  `json:"dateTo"`
	Guests     int     `json:"guests"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Обе даты прогоняются через машину выбора как пара кликов.
func (r *CreateBookingRequest) ToUseCaseRequest(sess session.Session) (*bookStay.Request, error) {
	picks := make([]time.Time, 0, 2)
	for _, raw := range []string{r.DateFrom, r.DateTo} {
		if raw == "" {
			continue
		}
		day, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		picks = append(picks, day)
	}

	return &bookStay.Request{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
		VenueID:     r.VenueID,
		Picks:       picks,
		Guests:      r.Guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookStay.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.Booking.ID,
		VenueID:    resp.Booking.VenueID,
		DateFrom:   resp.Booking.DateFrom.Format(domain.DateFormat),
		DateTo:     resp.Booking.DateTo.Format(domain.DateFormat),
		Guests:     resp.Booking.Guests,
		Nights:     resp.Nights,
		TotalPrice: resp.TotalPrice,
	}
}
