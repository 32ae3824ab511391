package update_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	"github.com/mariusjb/holidaze-gateway/internal/domain"
	bookingsService "github.com/mariusjb/holidaze-gateway/internal/service/bookings"
	bookingModels "github.com/mariusjb/holidaze-gateway/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgNoDateRange        = "select a valid date range"
	msgBookingNotFound    = "booking not found"
	msgRequestFailed      = "failed to update booking, please try again"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

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

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	picks := make([]time.Time, 0, 2)
	for _, raw := range []string{req.DateFrom, req.DateTo} {
		if raw == "" {
			continue
		}
		day, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("PUT /bookings/{id} - Failed to parse date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		picks = append(picks, day)
	}

	result, err := h.service.Update(r.Context(), &bookingModels.UpdateBookingRequest{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
		BookingID:   bookingID,
		Picks:       picks,
		Guests:      req.Guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrNoDateRange):
			h.logger.Warn("PUT /bookings/{id} - No date range: booking=%s", bookingID)
			handlers.RespondBadRequest(w, msgNoDateRange)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking=%s: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Not found: booking=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrVenueNotFound):
			h.logger.Warn("PUT /bookings/{id} - Venue not found: booking=%s", bookingID)
			handlers.RespondNotFound(w, "venue not found")

		case errors.Is(err, bookingsService.ErrUnauthorized):
			h.logger.Warn("PUT /bookings/{id} - Unauthorized: profile=%s", sess.ProfileName)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		default:
			h.logger.Error("PUT /bookings/{id} - Request failed: booking=%s: %v", bookingID, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Updated booking=%s by profile=%s", bookingID, sess.ProfileName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
