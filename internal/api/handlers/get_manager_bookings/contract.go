package get_manager_bookings

import (
	"context"

	bookingModels "github.com/mariusjb/holidaze-gateway/internal/service/bookings/models"
)

type BookingsService interface {
	GetManagerBookings(ctx context.Context, req *bookingModels.GetManagerBookingsRequest) (*bookingModels.ManagerBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
