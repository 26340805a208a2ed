package release_hold

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/api/middleware"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows/models"
)

const (
	msgInvalidShowID  = "некорректный ID шоу"
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidOutcome = "некорректный статус снятия холда"
	msgNotFound       = "шоу не найдено"
	msgNotAHold       = "шоу не является холдом"
	msgMissingUserID  = "отсутствует ID пользователя"
)

type Handler struct {
	service ShowService
	logger  Logger
}

func NewHandler(service ShowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/shows/{showId}/release-hold
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	showID, err := strconv.ParseInt(vars["showId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /shows/{id}/release-hold - Invalid show ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShowID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.ReleaseHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /shows/{id}/release-hold - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	show, err := h.service.ReleaseHold(r.Context(), showID, &req)
	if err != nil {
		switch {
		case errors.Is(err, shows.ErrShowNotFound):
			h.logger.Warn("POST /shows/{id}/release-hold - Show not found: show_id=%d", showID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, shows.ErrInvalidStatus):
			h.logger.Warn("POST /shows/{id}/release-hold - Invalid outcome: show_id=%d, outcome=%s", showID, req.Outcome)
			handlers.RespondBadRequest(w, msgInvalidOutcome)

		case errors.Is(err, shows.ErrNotAHold):
			h.logger.Warn("POST /shows/{id}/release-hold - Not a hold: show_id=%d", showID)
			handlers.RespondConflict(w, msgNotAHold)

		default:
			h.logger.Error("POST /shows/{id}/release-hold - Failed: show_id=%d, error=%v", showID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shows/{id}/release-hold - Hold released: show_id=%d, status=%s, user_id=%d",
		showID, show.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, show)
}
