package get_availability

import (
	"context"
	"fmt"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
)

// UseCase use case для подбора свободных дат площадки
type UseCase struct {
	showRepo ShowRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(showRepo ShowRepository, logger Logger) *UseCase {
	return &UseCase{
		showRepo: showRepo,
		logger:   logger,
	}
}

// Execute выполняет подбор свободных дат
// Результат детерминирован для зафиксированного набора шоу: повторный
// запуск с теми же параметрами дает ту же выборку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: user=%d, venue=%d, range=%s..%s, stages=%v",
		req.UserID, req.VenueID, req.From, req.To, req.StageIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем шоу площадки за период
	shows, err := uc.showRepo.GetByVenueWithFilter(ctx, domain.VenueShowsFilter{
		VenueID:   req.VenueID,
		StartDate: &req.From,
		EndDate:   &req.To,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to load shows: %v", ErrInternal, err)
	}

	// 3. Считаем занятые даты по политике запроса
	query := domain.AvailsQuery{
		StageIDs:        req.StageIDs,
		IncludeHolds:    req.IncludeHolds,
		IncludeConfirms: req.IncludeConfirms,
		OnlyDays:        req.OnlyDays,
	}
	busy := domain.BusyDates(shows, query)

	// 4. Перечисляем свободные даты и форматируем выборку
	dates := AvailableDates(req.From, req.To, busy, req.OnlyDays)
	formatted := FormatAvails(dates, req.Style)

	uc.logger.Info("GetAvailability: venue=%d has %d available dates (%d busy)",
		req.VenueID, len(dates), len(busy))

	return &Response{
		VenueID:   req.VenueID,
		Dates:     dates,
		Formatted: formatted,
		BusyCount: len(busy),
	}, nil
}
