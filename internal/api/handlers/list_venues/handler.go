package list_venues

import (
	"net/http"
	"strconv"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	venueModels "github.com/mariusjb/holidaze-gateway/internal/service/venues/models"
)

const msgRequestFailed = "failed to load venues, please try again"

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

// Handle GET /api/v1/venues?limit=&page=&sort=&sortOrder=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &venueModels.ListVenuesRequest{
		Sort:      q.Get("sort"),
		SortOrder: q.Get("sortOrder"),
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		req.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		req.Page = v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /venues - Request failed: %v", err)
		handlers.RespondBadGateway(w, msgRequestFailed)
		return
	}

	h.logger.Info("GET /venues - Returned %d venues, page=%d", len(result.Venues), result.Meta.CurrentPage)
	handlers.RespondJSON(w, http.StatusOK, result)
}
