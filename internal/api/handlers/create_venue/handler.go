package create_venue

import (
	"errors"
	"net/http"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	venuesService "github.com/mariusjb/holidaze-gateway/internal/service/venues"
	venueModels "github.com/mariusjb/holidaze-gateway/internal/service/venues/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRequestFailed      = "failed to create venue, please try again"
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

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}

	var data venueModels.VenueData
	if err := handlers.DecodeJSON(r, &data); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &venueModels.CreateVenueRequest{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
		Data:        data,
	})
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid input: profile=%s: %v", sess.ProfileName, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, venuesService.ErrUnauthorized):
			h.logger.Warn("POST /venues - Unauthorized: profile=%s", sess.ProfileName)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		default:
			h.logger.Error("POST /venues - Request failed: profile=%s: %v", sess.ProfileName, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("POST /venues - Created venue=%s by profile=%s", result.ID, sess.ProfileName)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
