package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	bookingsService "github.com/mariusjb/holidaze-gateway/internal/service/bookings"
	bookingModels "github.com/mariusjb/holidaze-gateway/internal/service/bookings/models"
)

const (
	msgBookingNotFound = "booking not found"
	msgRequestFailed   = "failed to cancel booking, please try again"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}
	bookingID := mux.Vars(r)["bookingId"]

	err := h.service.Delete(r.Context(), &bookingModels.DeleteBookingRequest{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
		BookingID:   bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Not found: booking=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookingsService.ErrUnauthorized):
			h.logger.Warn("DELETE /bookings/{id} - Unauthorized: profile=%s", sess.ProfileName)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		default:
			h.logger.Error("DELETE /bookings/{id} - Request failed: booking=%s: %v", bookingID, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Cancelled booking=%s by profile=%s", bookingID, sess.ProfileName)
	handlers.RespondNoContent(w)
}
