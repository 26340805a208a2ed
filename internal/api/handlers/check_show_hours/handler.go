package check_show_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages/models"
)

const (
	msgInvalidStageID = "некорректный ID сцены"
	msgInvalidInput   = "некорректные параметры проверки"
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

// Handle GET /api/v1/stages/{stageId}/check-hours?date=YYYY-MM-DD&doors=HH:MM&curfew=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stageID, err := strconv.ParseInt(vars["stageId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stages/{id}/check-hours - Invalid stage ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStageID)
		return
	}

	q := r.URL.Query()
	req := &models.CheckHoursRequest{
		Date:   q.Get("date"),
		Doors:  q.Get("doors"),
		Curfew: q.Get("curfew"),
	}

	verdict, err := h.service.CheckShowHours(r.Context(), stageID, req)
	if err != nil {
		switch {
		case errors.Is(err, stages.ErrStageNotFound):
			h.logger.Warn("GET /stages/{id}/check-hours - Stage not found: stage_id=%d", stageID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stages.ErrInvalidInput):
			h.logger.Warn("GET /stages/{id}/check-hours - Invalid input: stage_id=%d, error=%v", stageID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /stages/{id}/check-hours - Failed: stage_id=%d, error=%v", stageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stages/{id}/check-hours - OK: stage_id=%d, date=%s, outside=%t",
		stageID, req.Date, verdict.OutsideHours)
	handlers.RespondJSON(w, http.StatusOK, verdict)
}
