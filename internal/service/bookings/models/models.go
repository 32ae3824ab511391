package models

import (
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований профиля
type GetUserBookingsRequest struct {
	Token       string `json:"-"`
	ProfileName string `json:"profileName"`
}

// GetManagerBookingsRequest запрос на получение бронирований по venue менеджера
type GetManagerBookingsRequest struct {
	Token       string `json:"-"`
	ProfileName string `json:"profileName"`
}

// UpdateBookingRequest запрос на изменение бронирования.
// Даты задаются парой сырых кликов, как при создании.
type UpdateBookingRequest struct {
	Token       string      `json:"-"`
	ProfileName string      `json:"profileName"`
	BookingID   string      `json:"bookingId"`
	Picks       []time.Time `json:"picks"`
	Guests      int         `json:"guests"`
}

// DeleteBookingRequest запрос на отмену бронирования
type DeleteBookingRequest struct {
	Token       string `json:"-"`
	ProfileName string `json:"profileName"`
	BookingID   string `json:"bookingId"`
}

// Response модели

// VenueSummary сводка по venue внутри бронирования
type VenueSummary struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Price     float64        `json:"price"`
	MaxGuests int            `json:"maxGuests"`
	Media     []domain.Media `json:"media,omitempty"`
}

// BookingResponse представление одного бронирования
type BookingResponse struct {
	ID         string        `json:"id"`
	VenueID    string        `json:"venueId"`
	DateFrom   time.Time     `json:"dateFrom"`
	DateTo     time.Time     `json:"dateTo"`
	Guests     int           `json:"guests"`
	Nights     int           `json:"nights"`
	TotalPrice float64       `json:"totalPrice"`
	Venue      *VenueSummary `json:"venue,omitempty"`
}

// UserBookingsResponse бронирования профиля, разделенные на предстоящие
// и прошедшие. Бронирование с заселением в прошлом, но выселением
// сегодня или позже - предстоящее.
type UserBookingsResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

// VenueBookingsGroup бронирования одного venue менеджера
type VenueBookingsGroup struct {
	Venue    VenueSummary      `json:"venue"`
	Bookings []BookingResponse `json:"bookings"`
}

// ManagerBookingsResponse бронирования по всем venue менеджера
type ManagerBookingsResponse struct {
	Venues []VenueBookingsGroup `json:"venues"`
}

// Конвертеры domain -> response

// FromDomainBooking конвертирует доменное бронирование в response модель.
// Стоимость считается по цене venue, если venue привязан; без venue
// ночи считаются, стоимость остается нулевой.
func FromDomainBooking(b domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:       b.ID,
		VenueID:  b.VenueID,
		DateFrom: b.DateFrom,
		DateTo:   b.DateTo,
		Guests:   b.Guests,
		Nights:   b.Nights(),
	}

	if b.Venue != nil {
		resp.TotalPrice = domain.Total(b.DateFrom, b.DateTo, b.Venue.Price)
		summary := FromDomainVenueSummary(*b.Venue)
		resp.Venue = &summary
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// FromDomainVenueSummary конвертирует venue в сводку
func FromDomainVenueSummary(v domain.Venue) VenueSummary {
	return VenueSummary{
		ID:        v.ID,
		Name:      v.Name,
		Price:     v.Price,
		MaxGuests: v.MaxGuests,
		Media:     v.Media,
	}
}
