package get_hold_queue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidStageID = "некорректный ID сцены"
	msgInvalidDate    = "некорректная дата"
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

// Handle GET /api/v1/venues/{venueId}/hold-queue?date=YYYY-MM-DD&stageId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/hold-queue - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	q := r.URL.Query()
	date := q.Get("date")

	var stageID *int64
	if raw := q.Get("stageId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidStageID)
			return
		}
		stageID = &id
	}

	resp, err := h.service.HoldQueue(r.Context(), venueID, date, stageID)
	if err != nil {
		switch {
		case errors.Is(err, shows.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/hold-queue - Invalid date: venue_id=%d, date=%s", venueID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /venues/{id}/hold-queue - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/hold-queue - OK: venue_id=%d, date=%s, holds=%d",
		venueID, date, len(resp.Queue))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
