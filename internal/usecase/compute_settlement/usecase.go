package compute_settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	showRepo "github.com/FHLn-git/SoundPath-sub003/internal/infra/storage/show"
)

// UseCase use case расчёта выплаты артисту
type UseCase struct {
	showRepo     ShowRepository
	labelClient  LabelServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	showRepo ShowRepository,
	labelClient LabelServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		showRepo:     showRepo,
		labelClient:  labelClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Preview считает расчёт по сохранённым финансовым полям шоу
// Переданные в запросе overrides подменяют сохранённые значения
// Ничего не сохраняет, повторный вызов дает тот же результат
func (uc *UseCase) Preview(ctx context.Context, req *PreviewRequest) (*Response, error) {
	uc.logger.Info("ComputeSettlement: preview for show=%d, user=%d", req.ShowID, req.UserID)

	if req.ShowID <= 0 {
		return nil, ErrInvalidShowID
	}

	show, err := uc.getShow(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}

	inputs := settlementInputs(show, req)
	summary := domain.ComputeSettlement(inputs)

	resp := uc.buildResponse(ctx, show, inputs, summary)
	uc.logger.Info("ComputeSettlement: preview for show=%d owed=%s", req.ShowID, summary.AmountOwedToArtist.StringFixed(2))
	return resp, nil
}

// Finalize фиксирует расчёт шоу
// Повторная финализация запрещена; рассчитывать можно только шоу,
// дошедшие хотя бы до подтверждения
func (uc *UseCase) Finalize(ctx context.Context, req *FinalizeRequest) (*Response, error) {
	uc.logger.Info("ComputeSettlement: finalize for show=%d, user=%d", req.ShowID, req.UserID)

	if req.ShowID <= 0 {
		return nil, ErrInvalidShowID
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxSettlementNotesLength {
		return nil, ErrNotesTooLong
	}

	var resp *Response
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		show, err := uc.getShow(ctx, req.ShowID)
		if err != nil {
			return err
		}

		if show.IsSettled() {
			return fmt.Errorf("%w: show id=%d finalized at %s",
				ErrAlreadyFinalized, show.ID, show.SettlementFinalizedAt.Format(time.RFC3339))
		}
		if !show.IsConfirmLike() {
			return fmt.Errorf("%w: show id=%d is %s", ErrNotSettleable, show.ID, show.Status)
		}

		inputs := domain.SettlementInputs{
			Guarantee:     show.Guarantee,
			DoorSplitPct:  show.DoorSplitPct,
			TicketRevenue: show.TicketRevenue,
			Expenses:      show.Expenses,
		}
		summary := domain.ComputeSettlement(inputs)

		finalizedAt := uc.timeProvider.Now()
		if err := uc.showRepo.FinalizeSettlement(ctx, show.ID, summary.AmountOwedToArtist, req.Notes, finalizedAt); err != nil {
			if errors.Is(err, showRepo.ErrShowNotFound) {
				// Гонка: кто-то финализировал между чтением и записью
				return fmt.Errorf("%w: show id=%d", ErrAlreadyFinalized, show.ID)
			}
			return fmt.Errorf("%w: failed to persist settlement: %v", ErrInternal, err)
		}

		resp = uc.buildResponse(ctx, show, inputs, summary)
		resp.Finalized = true
		iso := finalizedAt.Format(time.RFC3339)
		resp.FinalizedAt = &iso
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrShowNotFound) || errors.Is(err, ErrAlreadyFinalized) || errors.Is(err, ErrNotSettleable) {
			uc.logger.Warn("ComputeSettlement: finalize show=%d: %v", req.ShowID, err)
		} else {
			uc.logger.Error("ComputeSettlement: finalize show=%d: %v", req.ShowID, err)
		}
		return nil, err
	}

	uc.logger.Info("ComputeSettlement: finalized show=%d owed=%s", req.ShowID, resp.AmountOwedToArtist.StringFixed(2))
	return resp, nil
}

func (uc *UseCase) getShow(ctx context.Context, id int64) (*domain.Show, error) {
	show, err := uc.showRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, showRepo.ErrShowNotFound) {
			uc.logger.Warn("ComputeSettlement: show id=%d not found", id)
			return nil, ErrShowNotFound
		}
		uc.logger.Error("ComputeSettlement: repository error for show id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to load show: %v", ErrInternal, err)
	}
	return show, nil
}

// buildResponse собирает ответ, денормализуя имя артиста из LabelService
// LabelService недоступен - расчёт уходит без имени, это не ошибка
func (uc *UseCase) buildResponse(ctx context.Context, show *domain.Show, inputs domain.SettlementInputs, summary domain.SettlementSummary) *Response {
	resp := &Response{
		ShowID:             show.ID,
		GuaranteeAmount:    summary.GuaranteeAmount,
		DoorSplitAmount:    summary.DoorSplitAmount,
		TotalExpenses:      summary.TotalExpenses,
		AmountOwedToArtist: summary.AmountOwedToArtist,
		Breakdown:          summary.Breakdown,
	}

	revenue := decimal.Zero
	if inputs.TicketRevenue != nil {
		revenue = *inputs.TicketRevenue
	}
	resp.PnL = domain.ComputeShowPnL(revenue, summary.AmountOwedToArtist, summary.TotalExpenses)

	resp.ArtistName = show.ArtistName
	if resp.ArtistName == nil && show.ArtistID != nil {
		artist, err := uc.labelClient.GetArtistWithGracefulDegradation(ctx, *show.ArtistID)
		if err == nil && artist != nil {
			resp.ArtistName = &artist.Name
		}
	}

	return resp
}

// settlementInputs собирает входы формулы: overrides из запроса поверх
// сохранённых полей шоу
func settlementInputs(show *domain.Show, req *PreviewRequest) domain.SettlementInputs {
	inputs := domain.SettlementInputs{
		Guarantee:     show.Guarantee,
		DoorSplitPct:  show.DoorSplitPct,
		TicketRevenue: show.TicketRevenue,
		Expenses:      show.Expenses,
	}
	if req.Guarantee != nil {
		inputs.Guarantee = req.Guarantee
	}
	if req.DoorSplitPct != nil {
		inputs.DoorSplitPct = req.DoorSplitPct
	}
	if req.TicketRevenue != nil {
		inputs.TicketRevenue = req.TicketRevenue
	}
	if req.Expenses != nil {
		inputs.Expenses = req.Expenses
	}
	return inputs
}
