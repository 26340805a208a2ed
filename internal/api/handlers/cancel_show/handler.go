package cancel_show

import (
	"encoding/json"
	"errors"
	"io"
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
	msgNotFound      = "шоу не найдено"
	msgCannotCancel  = "шоу не может быть отменено"
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

// Handle PATCH /api/v1/shows/{showId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	showID, err := strconv.ParseInt(vars["showId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /shows/{id}/cancel - Invalid show ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShowID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело опционально: причина отмены может отсутствовать
	var req models.CancelShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.logger.Warn("PATCH /shows/{id}/cancel - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShowID)
		return
	}
	req.UserID = userID

	if err := h.service.Cancel(r.Context(), showID, &req); err != nil {
		switch {
		case errors.Is(err, shows.ErrShowNotFound):
			h.logger.Warn("PATCH /shows/{id}/cancel - Show not found: show_id=%d", showID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, shows.ErrCannotCancel):
			h.logger.Warn("PATCH /shows/{id}/cancel - Cannot cancel: show_id=%d", showID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /shows/{id}/cancel - Failed: show_id=%d, error=%v", showID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /shows/{id}/cancel - Show cancelled: show_id=%d, user_id=%d", showID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
