package shows

import (
	"context"
	"errors"
	"fmt"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	showRepo "github.com/FHLn-git/SoundPath-sub003/internal/infra/storage/show"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows/models"
	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

// Статусы, в которые может перейти снимаемый холд
var validReleaseOutcomes = map[domain.ShowStatus]struct{}{
	domain.StatusOpen:      {},
	domain.StatusConfirmed: {},
	domain.StatusCancelled: {},
}

// Service сервис для работы с шоу
type Service struct {
	showRepo  ShowRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса шоу
func NewService(
	showRepo ShowRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		showRepo:  showRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает новое шоу
// Валидирует дату и тайминги, ранг холда допустим только для холдовых статусов
func (s *Service) Create(ctx context.Context, req *models.CreateShowRequest) (*models.ShowResponse, error) {
	s.logger.Info("Create: creating show for venue=%d, date=%s, user=%d", req.VenueID, req.Date, req.UserID)

	show, err := req.ToDomainShow()
	if err != nil {
		s.logger.Warn("Create: invalid status=%v for venue=%d", req.Status, req.VenueID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	if err := s.validateShow(show); err != nil {
		s.logger.Warn("Create: validation failed for venue=%d: %v", req.VenueID, err)
		return nil, err
	}

	created, err := s.showRepo.Create(ctx, show)
	if err != nil {
		s.logger.Error("Create: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created show id=%d for venue=%d", created.ID, created.VenueID)
	return models.FromDomainShow(created), nil
}

// GetByID получает шоу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ShowResponse, error) {
	s.logger.Info("GetByID: fetching show id=%d", id)

	show, err := s.showRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, showRepo.ErrShowNotFound) {
			s.logger.Warn("GetByID: show id=%d not found", id)
			return nil, ErrShowNotFound
		}
		s.logger.Error("GetByID: repository error for show id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShow(show), nil
}

// ListByVenue получает шоу площадки с гибкой фильтрацией
// Поддерживает фильтрацию по сцене, периоду, статусу и включению отменённых шоу
func (s *Service) ListByVenue(ctx context.Context, req *models.ListShowsRequest) (*models.ShowListResponse, error) {
	s.logger.Info("ListByVenue: fetching shows for venue=%d, user=%d", req.VenueID, req.UserID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByVenue: invalid status=%v for venue=%d", req.Status, req.VenueID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if filter.StartDate != nil && !types.ValidDate(*filter.StartDate) {
		return nil, fmt.Errorf("%w: invalid startDate", ErrInvalidInput)
	}
	if filter.EndDate != nil && !types.ValidDate(*filter.EndDate) {
		return nil, fmt.Errorf("%w: invalid endDate", ErrInvalidInput)
	}

	shows, err := s.showRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByVenue: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: ListByVenue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByVenue: successfully fetched %d shows for venue=%d", len(shows), req.VenueID)
	return models.FromDomainShowList(shows), nil
}

// UpdateStatus меняет статус шоу
// Терминальные статусы (cancelled, completed) заморожены
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ShowResponse, error) {
	s.logger.Info("UpdateStatus: updating show id=%d to status=%s, user=%d", id, req.Status, req.UserID)

	newStatus, err := models.ToDomainShowStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for show id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	var updated *domain.Show
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		show, err := s.showRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, showRepo.ErrShowNotFound) {
				return ErrShowNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if show.IsTerminal() {
			return fmt.Errorf("%w: show id=%d is %s", ErrStatusFrozen, id, show.Status)
		}

		if err := s.showRepo.UpdateStatus(ctx, id, newStatus); err != nil {
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		show.Status = newStatus
		updated = show
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrShowNotFound) || errors.Is(err, ErrStatusFrozen) {
			s.logger.Warn("UpdateStatus: show id=%d: %v", id, err)
		} else {
			s.logger.Error("UpdateStatus: show id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated show id=%d to status=%s", id, newStatus)
	return models.FromDomainShow(updated), nil
}

// Cancel отменяет шоу
// Уже завершённые и отменённые шоу отменить нельзя
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelShowRequest) error {
	s.logger.Info("Cancel: cancelling show id=%d, user=%d", id, req.UserID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		show, err := s.showRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, showRepo.ErrShowNotFound) {
				return ErrShowNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !show.CanBeCancelled() {
			return fmt.Errorf("%w: show id=%d is %s", ErrCannotCancel, id, show.Status)
		}

		if show.Status == domain.StatusHold && show.HoldRank != nil {
			// Отмена ранжированного холда двигает очередь так же, как release
			return s.releaseHoldLocked(ctx, show, domain.StatusCancelled)
		}

		if err := s.showRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrShowNotFound) || errors.Is(err, ErrCannotCancel) {
			s.logger.Warn("Cancel: show id=%d: %v", id, err)
		} else {
			s.logger.Error("Cancel: show id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("Cancel: successfully cancelled show id=%d", id)
	return nil
}

// HoldQueue возвращает очередь холдов площадки на дату
// Холды сортируются по рангу, отсутствующий ранг уходит в конец очереди
// Опциональный stageID ограничивает очередь холдами, затрагивающими сцену
func (s *Service) HoldQueue(ctx context.Context, venueID int64, date string, stageID *int64) (*models.HoldQueueResponse, error) {
	s.logger.Info("HoldQueue: fetching holds for venue=%d, date=%s", venueID, date)

	if !types.ValidDate(date) {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	holds, err := s.showRepo.GetHoldsByVenueAndDate(ctx, venueID, date)
	if err != nil {
		s.logger.Error("HoldQueue: repository error for venue=%d, date=%s: %v", venueID, date, err)
		return nil, fmt.Errorf("%w: HoldQueue - repository error: %v", ErrInternal, err)
	}

	if stageID != nil {
		scoped := make([]*domain.Show, 0, len(holds))
		for _, h := range holds {
			if domain.ShowBlocksStages(h, []int64{*stageID}) {
				scoped = append(scoped, h)
			}
		}
		holds = scoped
	}

	sorted := domain.SortHolds(holds)

	resp := &models.HoldQueueResponse{
		VenueID: venueID,
		Date:    date,
		Queue:   make([]models.HoldQueueEntry, 0, len(sorted)),
	}
	for _, h := range sorted {
		resp.Queue = append(resp.Queue, models.HoldQueueEntry{
			ShowID:          h.ID,
			Title:           h.Title,
			HoldRank:        h.HoldRank,
			HoldAutoPromote: h.HoldAutoPromote,
		})
	}

	s.logger.Info("HoldQueue: venue=%d, date=%s has %d holds", venueID, date, len(resp.Queue))
	return resp, nil
}

// ReleaseHold снимает холд, переводя шоу в один из конечных статусов
// При включённой автопромоции оставшиеся холды на ту же дату и сцены
// поднимаются на освободившуюся позицию
func (s *Service) ReleaseHold(ctx context.Context, id int64, req *models.ReleaseHoldRequest) (*models.ShowResponse, error) {
	s.logger.Info("ReleaseHold: releasing hold id=%d to outcome=%s, user=%d", id, req.Outcome, req.UserID)

	outcome, err := models.ToDomainShowStatus(req.Outcome)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Outcome)
	}
	if _, ok := validReleaseOutcomes[outcome]; !ok {
		return nil, fmt.Errorf("%w: release outcome must be open, confirmed or cancelled", ErrInvalidStatus)
	}

	var released *domain.Show
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		show, err := s.showRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, showRepo.ErrShowNotFound) {
				return ErrShowNotFound
			}
			return fmt.Errorf("%w: ReleaseHold - repository error: %v", ErrInternal, err)
		}

		if show.Status != domain.StatusHold {
			return fmt.Errorf("%w: show id=%d is %s", ErrNotAHold, id, show.Status)
		}

		if err := s.releaseHoldLocked(ctx, show, outcome); err != nil {
			return err
		}

		show.Status = outcome
		show.HoldRank = nil
		released = show
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrShowNotFound) || errors.Is(err, ErrNotAHold) {
			s.logger.Warn("ReleaseHold: show id=%d: %v", id, err)
		} else {
			s.logger.Error("ReleaseHold: show id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("ReleaseHold: successfully released hold id=%d to status=%s", id, released.Status)
	return models.FromDomainShow(released), nil
}

// releaseHoldLocked снимает холд и промоутит очередь
// Вызывается только внутри транзакции
func (s *Service) releaseHoldLocked(ctx context.Context, show *domain.Show, outcome domain.ShowStatus) error {
	if err := s.showRepo.ReleaseHold(ctx, show.ID, outcome); err != nil {
		if errors.Is(err, showRepo.ErrShowNotFound) {
			return ErrNotAHold
		}
		return fmt.Errorf("%w: ReleaseHold - repository error: %v", ErrInternal, err)
	}

	if !show.HoldAutoPromote || show.HoldRank == nil {
		return nil
	}

	holds, err := s.showRepo.GetHoldsByVenueAndDate(ctx, show.VenueID, show.Date)
	if err != nil {
		return fmt.Errorf("%w: ReleaseHold - repository error: %v", ErrInternal, err)
	}

	releasedStages := show.OccupiedStageIDs()
	for _, h := range holds {
		if h.ID == show.ID || h.HoldRank == nil {
			continue
		}
		// Промоутим только холды, конкурирующие за те же сцены
		if !domain.ShowBlocksStages(h, releasedStages) {
			continue
		}
		if *h.HoldRank > *show.HoldRank {
			if err := s.showRepo.UpdateHoldRank(ctx, h.ID, *h.HoldRank-1); err != nil {
				return fmt.Errorf("%w: ReleaseHold - promote error: %v", ErrInternal, err)
			}
		}
	}

	return nil
}

// validateShow проверяет входные данные при создании шоу
func (s *Service) validateShow(show *domain.Show) error {
	if show.VenueID <= 0 {
		return fmt.Errorf("%w: venueId is required", ErrInvalidInput)
	}
	if show.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(show.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}
	if !types.ValidDate(show.Date) {
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, show.Date)
	}
	if show.HoldRank != nil && !show.IsHold() {
		return fmt.Errorf("%w: holdRank is only valid for hold statuses", ErrInvalidInput)
	}
	if show.HoldRank != nil && *show.HoldRank < 1 {
		return fmt.Errorf("%w: holdRank must be positive", ErrInvalidInput)
	}
	if show.IsMultiStage && len(show.LinkedStageIDs) == 0 {
		return fmt.Errorf("%w: multi-stage show requires linkedStageIds", ErrInvalidInput)
	}

	for _, ts := range []types.TimeString{show.LoadIn, show.Soundcheck, show.Doors, show.Curfew, show.LoadOut} {
		if ts.IsZero() {
			continue
		}
		if err := ts.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, string(ts))
		}
	}

	return nil
}
