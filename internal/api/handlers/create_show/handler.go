package create_show

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/api/middleware"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows/models"
)

const (
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidInput  = "некорректные входные данные"
	msgInvalidStatus = "некорректный статус шоу"
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

// Handle POST /api/v1/shows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /shows - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	show, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, shows.ErrInvalidStatus):
			h.logger.Warn("POST /shows - Invalid status: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, shows.ErrInvalidInput):
			h.logger.Warn("POST /shows - Invalid input: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shows - Failed: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shows - Show created: show_id=%d, venue_id=%d, user_id=%d",
		show.ID, show.VenueID, userID)
	handlers.RespondJSON(w, http.StatusCreated, show)
}
