package update_booking

import (
	"context"

	bookingModels "github.com/mariusjb/holidaze-gateway/internal/service/bookings/models"
)

type BookingsService interface {
	Update(ctx context.Context, req *bookingModels.UpdateBookingRequest) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
