package get_profile

import (
	"errors"
	"net/http"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	profileService "github.com/mariusjb/holidaze-gateway/internal/service/profile"
)

const (
	msgProfileNotFound = "profile not found"
	msgRequestFailed   = "failed to load profile, please try again"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profiles/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}

	result, err := h.service.Get(r.Context(), &profileService.GetProfileRequest{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
	})
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrProfileNotFound):
			h.logger.Warn("GET /profiles/me - Not found: profile=%s", sess.ProfileName)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, profileService.ErrUnauthorized):
			h.logger.Warn("GET /profiles/me - Unauthorized: profile=%s", sess.ProfileName)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		default:
			h.logger.Error("GET /profiles/me - Request failed: profile=%s: %v", sess.ProfileName, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("GET /profiles/me - Returned profile=%s", sess.ProfileName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
