package get_user_bookings

import (
	"context"

	bookingModels "github.com/mariusjb/holidaze-gateway/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, req *bookingModels.GetUserBookingsRequest) (*bookingModels.UserBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
