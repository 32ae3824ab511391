package create_booking

import (
	"errors"
	"net/http"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/api/middleware"
	bookStay "github.com/mariusjb/holidaze-gateway/internal/usecase/book_stay"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgNoDateRange        = "select a valid date range"
	msgVenueNotFound      = "venue not found"
	msgRequestFailed      = "booking request failed, please try again"
)

type Handler struct {
	useCase BookStayUseCase
	logger  Logger
}

func NewHandler(useCase BookStayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session is required")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sess)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var guestsErr *bookStay.GuestsOutOfBoundsError
		switch {
		case errors.As(err, &guestsErr):
			h.logger.Warn("POST /bookings - Guests out of bounds: profile=%s venue=%s", sess.ProfileName, req.VenueID)
			handlers.RespondBadRequest(w, guestsErr.Error())

		case errors.Is(err, bookStay.ErrNoDateRange):
			h.logger.Warn("POST /bookings - No date range: profile=%s venue=%s", sess.ProfileName, req.VenueID)
			handlers.RespondBadRequest(w, msgNoDateRange)

		case errors.Is(err, bookStay.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, bookStay.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, bookStay.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Unauthorized: profile=%s", sess.ProfileName)
			handlers.RespondUnauthorized(w, "session expired, please log in again")

		case errors.Is(err, bookStay.ErrRequestFailed):
			h.logger.Error("POST /bookings - Request failed: profile=%s venue=%s: %v", sess.ProfileName, req.VenueID, err)
			handlers.RespondBadGateway(w, msgRequestFailed)

		default:
			h.logger.Error("POST /bookings - Unexpected error: profile=%s venue=%s: %v", sess.ProfileName, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s profile=%s venue=%s nights=%d",
		result.Booking.ID, sess.ProfileName, req.VenueID, result.Nights)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
