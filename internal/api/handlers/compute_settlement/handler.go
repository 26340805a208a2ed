package compute_settlement

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/FHLn-git/SoundPath-sub003/internal/api/handlers"
	"github.com/FHLn-git/SoundPath-sub003/internal/api/middleware"
	uc "github.com/FHLn-git/SoundPath-sub003/internal/usecase/compute_settlement"
)

const (
	msgInvalidShowID    = "некорректный ID шоу"
	msgInvalidBody      = "некорректное тело запроса"
	msgNotFound         = "шоу не найдено"
	msgAlreadyFinalized = "расчёт уже финализирован"
	msgNotSettleable    = "шоу нельзя рассчитывать в текущем статусе"
	msgNotesTooLong     = "слишком длинные заметки расчёта"
	msgMissingUserID    = "отсутствует ID пользователя"
)

type Handler struct {
	useCase SettlementUseCase
	logger  Logger
}

func NewHandler(useCase SettlementUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandlePreview POST /api/v1/shows/{showId}/settlement/preview
//
// Тело опционально: overrides подменяют сохранённые финансовые поля
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	showID, userID, ok := h.parsePath(w, r)
	if !ok {
		return
	}

	var req uc.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.logger.Warn("POST /shows/{id}/settlement/preview - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID
	req.ShowID = showID

	resp, err := h.useCase.Preview(r.Context(), &req)
	if err != nil {
		h.respondError(w, "preview", showID, err)
		return
	}

	h.logger.Info("POST /shows/{id}/settlement/preview - OK: show_id=%d, owed=%s",
		showID, resp.AmountOwedToArtist.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleFinalize POST /api/v1/shows/{showId}/settlement/finalize
func (h *Handler) HandleFinalize(w http.ResponseWriter, r *http.Request) {
	showID, userID, ok := h.parsePath(w, r)
	if !ok {
		return
	}

	var req uc.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.logger.Warn("POST /shows/{id}/settlement/finalize - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID
	req.ShowID = showID

	resp, err := h.useCase.Finalize(r.Context(), &req)
	if err != nil {
		h.respondError(w, "finalize", showID, err)
		return
	}

	h.logger.Info("POST /shows/{id}/settlement/finalize - OK: show_id=%d, owed=%s",
		showID, resp.AmountOwedToArtist.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) parsePath(w http.ResponseWriter, r *http.Request) (showID, userID int64, ok bool) {
	vars := mux.Vars(r)
	showID, err := strconv.ParseInt(vars["showId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /shows/{id}/settlement - Invalid show ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShowID)
		return 0, 0, false
	}

	userID, found := middleware.GetUserID(r.Context())
	if !found {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}
	return showID, userID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, showID int64, err error) {
	switch {
	case errors.Is(err, uc.ErrShowNotFound):
		h.logger.Warn("POST /shows/{id}/settlement/%s - Show not found: show_id=%d", op, showID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, uc.ErrInvalidShowID):
		handlers.RespondBadRequest(w, msgInvalidShowID)

	case errors.Is(err, uc.ErrAlreadyFinalized):
		h.logger.Warn("POST /shows/{id}/settlement/%s - Already finalized: show_id=%d", op, showID)
		handlers.RespondConflict(w, msgAlreadyFinalized)

	case errors.Is(err, uc.ErrNotSettleable):
		h.logger.Warn("POST /shows/{id}/settlement/%s - Not settleable: show_id=%d", op, showID)
		handlers.RespondConflict(w, msgNotSettleable)

	case errors.Is(err, uc.ErrNotesTooLong):
		handlers.RespondBadRequest(w, msgNotesTooLong)

	default:
		h.logger.Error("POST /shows/{id}/settlement/%s - Failed: show_id=%d, error=%v", op, showID, err)
		handlers.RespondInternalError(w)
	}
}
