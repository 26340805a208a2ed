package update_stage_hours

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/api/middleware"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages/models"
)

const (
	msgInvalidStageID = "некорректный ID сцены"
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidHours   = "некорректные рабочие часы"
	msgNotFound       = "сцена не найдена"
	msgMissingUserID  = "отсутствует ID пользователя"
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

// Handle PUT /api/v1/stages/{stageId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stageID, err := strconv.ParseInt(vars["stageId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stages/{id}/hours - Invalid stage ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStageID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /stages/{id}/hours - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	stage, err := h.service.UpdateOperatingHours(r.Context(), stageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, stages.ErrStageNotFound):
			h.logger.Warn("PUT /stages/{id}/hours - Stage not found: stage_id=%d", stageID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stages.ErrInvalidHours):
			h.logger.Warn("PUT /stages/{id}/hours - Invalid hours: stage_id=%d, error=%v", stageID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /stages/{id}/hours - Failed: stage_id=%d, error=%v", stageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stages/{id}/hours - Hours updated: stage_id=%d, user_id=%d", stageID, userID)
	handlers.RespondJSON(w, http.StatusOK, stage)
}
