package get_stage_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages"
)

const (
	msgInvalidStageID = "некорректный ID сцены"
	msgNotFound       = "сцена не найдена"
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

// Handle GET /api/v1/stages/{stageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stageID, err := strconv.ParseInt(vars["stageId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stages/{id} - Invalid stage ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStageID)
		return
	}

	stage, err := h.service.GetByID(r.Context(), stageID)
	if err != nil {
		switch {
		case errors.Is(err, stages.ErrStageNotFound):
			h.logger.Warn("GET /stages/{id} - Stage not found: stage_id=%d", stageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /stages/{id} - Failed: stage_id=%d, error=%v", stageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stages/{id} - OK: stage_id=%d", stageID)
	handlers.RespondJSON(w, http.StatusOK, stage)
}
