package search_venues

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	venuesService "github.com/mariusjb/holidaze-gateway/internal/service/venues"
	venueModels "github.com/mariusjb/holidaze-gateway/internal/service/venues/models"
)

const (
	msgQueryRequired = "search query is required"
	msgRequestFailed = "search failed, please try again"
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

// Handle GET /api/v1/venues/search?q=&limit=&page=
// Действует политика last request wins: перекрытый запрос отвечает 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &venueModels.SearchVenuesRequest{
		Query: q.Get("q"),
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		req.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		req.Page = v
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("GET /venues/search - Empty query")
			handlers.RespondBadRequest(w, msgQueryRequired)

		case errors.Is(err, venuesService.ErrSearchSuperseded):
			// Результат устарел - более новый запрос уже в полете,
			// его ответ и будет показан
			h.logger.Info("GET /venues/search - Superseded: q=%q", req.Query)
			handlers.RespondNoContent(w)

		default:
			h.logger.Error("GET /venues/search - Request failed: q=%q: %v", req.Query, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("GET /venues/search - Returned %d venues for q=%q", len(result.Venues), req.Query)
	handlers.RespondJSON(w, http.StatusOK, result)
}
