package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/api/middleware"
	uc "github.com/FHLn-git/SoundPath-sub003/internal/usecase/get_availability"
)

const (
	msgInvalidVenueID   = "некорректный ID площадки"
	msgInvalidDateRange = "некорректный диапазон дат"
	msgInvalidOnlyDays  = "некорректный фильтр дней недели"
	msgInvalidStyle     = "некорректный стиль форматирования"
	msgInvalidStageIDs  = "некорректный список сцен"
	msgMissingUserID    = "отсутствует ID пользователя"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability
//
// Query параметры: from, to (обязательные, YYYY-MM-DD), stageIds (через
// запятую), onlyDays (0=sun..6=sat через запятую), includeHolds,
// includeConfirms, style (short|long|csv)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	q := r.URL.Query()
	req := &uc.Request{
		UserID:          userID,
		VenueID:         venueID,
		From:            q.Get("from"),
		To:              q.Get("to"),
		Style:           q.Get("style"),
		IncludeHolds:    q.Get("includeHolds") == "true",
		IncludeConfirms: q.Get("includeConfirms") == "true",
	}

	if raw := q.Get("stageIds"); raw != "" {
		stageIDs, err := parseInt64List(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidStageIDs)
			return
		}
		req.StageIDs = stageIDs
	}

	if raw := q.Get("onlyDays"); raw != "" {
		onlyDays, err := parseIntList(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidOnlyDays)
			return
		}
		req.OnlyDays = onlyDays
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidVenueID):
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, uc.ErrInvalidDateRange):
			h.logger.Warn("GET /venues/{id}/availability - Invalid range: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, uc.ErrInvalidOnlyDays):
			handlers.RespondBadRequest(w, msgInvalidOnlyDays)

		case errors.Is(err, uc.ErrInvalidStyle):
			handlers.RespondBadRequest(w, msgInvalidStyle)

		default:
			h.logger.Error("GET /venues/{id}/availability - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/availability - OK: venue_id=%d, dates=%d", venueID, len(resp.Dates))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func parseInt64List(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseIntList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
