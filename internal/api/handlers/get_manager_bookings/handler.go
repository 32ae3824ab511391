package get_manager_bookings

import (
	"errors"
	"net/http"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	bookingsService "github.com/mariusjb/holidaze-gateway/internal/service/bookings"
	bookingModels "github.com/mariusjb/holidaze-gateway/internal/service/bookings/models"
)

const (
	msgNotManager    = "profile is not a venue manager"
	msgRequestFailed = "failed to load venue bookings, please try again"
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

// Handle GET /api/v1/profiles/me/venues/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}
	if !sess.VenueManager {
		h.logger.Warn("GET /profiles/me/venues/bookings - Not a manager: profile=%s", sess.ProfileName)
		handlers.RespondError(w, http.StatusForbidden, msgNotManager)
		return
	}

	result, err := h.service.GetManagerBookings(r.Context(), &bookingModels.GetManagerBookingsRequest{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrUnauthorized):
			h.logger.Warn("GET /profiles/me/venues/bookings - Unauthorized: profile=%s", sess.ProfileName)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		default:
			h.logger.Error("GET /profiles/me/venues/bookings - Request failed: profile=%s: %v", sess.ProfileName, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("GET /profiles/me/venues/bookings - Returned %d venues for profile=%s",
		len(result.Venues), sess.ProfileName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
