package get_venue_stages

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
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

// Handle GET /api/v1/venues/{venueId}/stages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/stages - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	resp, err := h.service.ListByVenue(r.Context(), venueID)
	if err != nil {
		h.logger.Error("GET /venues/{id}/stages - Failed: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/{id}/stages - Found %d stages: venue_id=%d", len(resp.Stages), venueID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
