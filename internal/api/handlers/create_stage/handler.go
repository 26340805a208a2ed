package create_stage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/api/middleware"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages/models"
)

const (
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidInput  = "некорректные входные данные"
	msgInvalidHours  = "некорректные рабочие часы"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service StageService
	logger  Logger
}

func NewHandler(service StageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/stages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /stages - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	stage, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, stages.ErrInvalidHours):
			h.logger.Warn("POST /stages - Invalid hours: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, stages.ErrInvalidInput):
			h.logger.Warn("POST /stages - Invalid input: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /stages - Failed: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stages - Stage created: stage_id=%d, venue_id=%d, user_id=%d", stage.ID, stage.VenueID, userID)
	handlers.RespondJSON(w, http.StatusCreated, stage)
}
