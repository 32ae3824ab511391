package edit_venue

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
	msgInvalidRequestBody = "invalid request body"
	msgVenueNotFound      = "venue not found"
	msgRequestFailed      = "failed to update venue, please try again"
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

// Handle PUT /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}
	venueID := mux.Vars(r)["venueId"]

	var data venueModels.VenueData
	if err := handlers.DecodeJSON(r, &data); err != nil {
		h.logger.Warn("PUT /venues/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Edit(r.Context(), &venueModels.EditVenueRequest{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
		VenueID:     venueID,
		Data:        data,
	})
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id} - Invalid input: venue=%s: %v", venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id} - Not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrUnauthorized):
			h.logger.Warn("PUT /venues/{id} - Unauthorized: profile=%s venue=%s", sess.ProfileName, venueID)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		default:
			h.logger.Error("PUT /venues/{id} - Request failed: venue=%s: %v", venueID, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("PUT /venues/{id} - Updated venue=%s by profile=%s", venueID, sess.ProfileName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
