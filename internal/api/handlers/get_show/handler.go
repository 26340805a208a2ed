package get_show

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows"
)

const (
	msgInvalidShowID = "некорректный ID шоу"
	msgNotFound      = "шоу не найдено"
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

// Handle GET /api/v1/shows/{showId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	showID, err := strconv.ParseInt(vars["showId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shows/{id} - Invalid show ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShowID)
		return
	}

	show, err := h.service.GetByID(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, shows.ErrShowNotFound):
			h.logger.Warn("GET /shows/{id} - Show not found: show_id=%d", showID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /shows/{id} - Failed: show_id=%d, error=%v", showID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shows/{id} - OK: show_id=%d", showID)
	handlers.RespondJSON(w, http.StatusOK, show)
}
