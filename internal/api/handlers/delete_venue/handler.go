package delete_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	venuesService "github.com/mariusjb/holidaze-gateway/internal/service/venues"
	venueModels "github.com/mariusjb/holidaze-gateway/internal/service/venues/models"
)

const (
	msgVenueNotFound = "venue not found"
	msgRequestFailed = "failed to delete venue, please try again"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}
	venueID := mux.Vars(r)["venueId"]

	err := h.service.Delete(r.Context(), &venueModels.DeleteVenueRequest{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
		VenueID:     venueID,
	})
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/{id} - Not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("DELETE /venues/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, venuesService.ErrUnauthorized):
			h.logger.Warn("DELETE /venues/{id} - Unauthorized: profile=%s venue=%s", sess.ProfileName, venueID)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		default:
			h.logger.Error("DELETE /venues/{id} - Request failed: venue=%s: %v", venueID, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("DELETE /venues/{id} - Deleted venue=%s by profile=%s", venueID, sess.ProfileName)
	handlers.RespondNoContent(w)
}
