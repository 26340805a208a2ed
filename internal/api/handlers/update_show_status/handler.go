package update_show_status

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
	msgInvalidShowID = "некорректный ID шоу"
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidStatus = "некорректный статус шоу"
	msgNotFound      = "шоу не найдено"
	msgStatusFrozen  = "шоу в терминальном статусе"
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle PATCH /api/v1/shows/{showId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	showID, err := strconv.ParseInt(vars["showId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /shows/{id}/status - Invalid show ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShowID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PATCH /shows/{id}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	show, err := h.service.UpdateStatus(r.Context(), showID, &req)
	if err != nil {
		switch {
		case errors.Is(err, shows.ErrShowNotFound):
			h.logger.Warn("PATCH /shows/{id}/status - Show not found: show_id=%d", showID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, shows.ErrInvalidStatus):
			h.logger.Warn("PATCH /shows/{id}/status - Invalid status: show_id=%d, status=%s", showID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, shows.ErrStatusFrozen):
			h.logger.Warn("PATCH /shows/{id}/status - Status frozen: show_id=%d", showID)
			handlers.RespondConflict(w, msgStatusFrozen)

		default:
			h.logger.Error("PATCH /shows/{id}/status - Failed: show_id=%d, error=%v", showID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /shows/{id}/status - OK: show_id=%d, status=%s, user_id=%d",
		showID, show.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, show)
}
