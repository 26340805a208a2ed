package import_calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/api/middleware"
	uc "github.com/FHLn-git/SoundPath-sub003/internal/usecase/import_calendar"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidBody    = "некорректное тело запроса"
	msgEmptyPayload   = "пустые данные импорта"
	msgMissingColumns = "в заголовке нет обязательных колонок"
	msgMissingUserID  = "отсутствует ID пользователя"
)

type Handler struct {
	useCase ImportUseCase
	logger  Logger
}

func NewHandler(useCase ImportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/calendar-import
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/calendar-import - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req uc.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /venues/{id}/calendar-import - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID
	req.VenueID = venueID

	resp, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidVenueID):
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, uc.ErrEmptyPayload):
			h.logger.Warn("POST /venues/{id}/calendar-import - Empty payload: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgEmptyPayload)

		case errors.Is(err, uc.ErrMissingColumns):
			h.logger.Warn("POST /venues/{id}/calendar-import - Missing columns: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgMissingColumns)

		default:
			h.logger.Error("POST /venues/{id}/calendar-import - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/calendar-import - OK: venue_id=%d, rows=%d, conflicts=%d, skipped=%d",
		venueID, len(resp.Rows), len(resp.ConflictIndices), resp.SkippedRows)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
