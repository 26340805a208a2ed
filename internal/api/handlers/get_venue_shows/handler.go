package get_venue_shows

import (
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
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidStageID = "некорректный ID сцены"
	msgInvalidInput   = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/venues/{venueId}/shows
//
// Query параметры: stageId, startDate, endDate, status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/shows - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	q := r.URL.Query()
	req := &models.ListShowsRequest{
		UserID:           userID,
		VenueID:          venueID,
		IncludeCancelled: q.Get("includeCancelled") == "true",
	}

	if raw := q.Get("stageId"); raw != "" {
		stageID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidStageID)
			return
		}
		req.StageID = &stageID
	}
	if raw := q.Get("startDate"); raw != "" {
		req.StartDate = &raw
	}
	if raw := q.Get("endDate"); raw != "" {
		req.EndDate = &raw
	}
	if raw := q.Get("status"); raw != "" {
		req.Status = &raw
	}

	resp, err := h.service.ListByVenue(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, shows.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/shows - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /venues/{id}/shows - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/shows - OK: venue_id=%d, shows=%d", venueID, len(resp.Shows))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
