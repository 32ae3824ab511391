package update_avatar

import (
	"errors"
	"net/http"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	profileService "github.com/mariusjb/holidaze-gateway/internal/service/profile"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgProfileNotFound    = "profile not found"
	msgRequestFailed      = "failed to update avatar, please try again"
)

// UpdateAvatarRequest HTTP request model
type UpdateAvatarRequest struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

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

// Handle PUT /api/v1/profiles/me/avatar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}

	var req UpdateAvatarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profiles/me/avatar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateAvatar(r.Context(), &profileService.UpdateAvatarRequest{
		Token:       sess.AccessToken,
		ProfileName: sess.ProfileName,
		URL:         req.URL,
		Alt:         req.Alt,
	})
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrInvalidInput):
			h.logger.Warn("PUT /profiles/me/avatar - Invalid input: profile=%s: %v", sess.ProfileName, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, profileService.ErrProfileNotFound):
			h.logger.Warn("PUT /profiles/me/avatar - Not found: profile=%s", sess.ProfileName)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, profileService.ErrUnauthorized):
			h.logger.Warn("PUT /profiles/me/avatar - Unauthorized: profile=%s", sess.ProfileName)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		default:
			h.logger.Error("PUT /profiles/me/avatar - Request failed: profile=%s: %v", sess.ProfileName, err)
			handlers.RespondBadGateway(w, msgRequestFailed)
		}
		return
	}

	h.logger.Info("PUT /profiles/me/avatar - Updated avatar for profile=%s", sess.ProfileName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
