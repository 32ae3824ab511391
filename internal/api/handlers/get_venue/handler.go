package get_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	venuesService "github.com/mariusjb/holidaze-gateway/internal/service/venues"
)

const (
	msgVenueNotFound = "venue not found"
	msgRequestFailed = "failed to load venue, please try again"
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

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	result, err := h.service.Get(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id} - Not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /venues/{id} - Request failed: venue=%s: %v", venueID, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("GET /venues/{id} - Returned venue=%s with %d disabled days", venueID, len(result.DisabledDays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
