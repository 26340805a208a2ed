package import_calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
)

// UseCase use case импорта календаря площадки
type UseCase struct {
	showRepo  ShowRepository
	stageRepo StageRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(showRepo ShowRepository, stageRepo StageRepository, logger Logger) *UseCase {
	return &UseCase{
		showRepo:  showRepo,
		stageRepo: stageRepo,
		logger:    logger,
	}
}

// Execute разбирает таблицу и сверяет строки с занятыми датами площадки
// Ничего не создает: ответ - предпросмотр для агента перед ручным вводом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ImportCalendar: venue=%d, user=%d, payload=%d bytes",
		req.VenueID, req.UserID, len(req.Payload))

	if req.VenueID <= 0 {
		return nil, ErrInvalidVenueID
	}

	rows, skipped, err := ParseTable(req.Payload)
	if err != nil {
		uc.logger.Warn("ImportCalendar: parse failed for venue=%d: %v", req.VenueID, err)
		return nil, err
	}

	resp := &Response{
		VenueID:         req.VenueID,
		Rows:            rows,
		ConflictIndices: []int{},
		SkippedRows:     skipped,
	}
	if len(rows) == 0 {
		uc.logger.Info("ImportCalendar: venue=%d, no usable rows (%d skipped)", req.VenueID, skipped)
		return resp, nil
	}

	from, to := dateBounds(rows)
	shows, err := uc.showRepo.GetByVenueWithFilter(ctx, domain.VenueShowsFilter{
		VenueID:   req.VenueID,
		StartDate: &from,
		EndDate:   &to,
	})
	if err != nil {
		uc.logger.Error("ImportCalendar: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to load shows: %v", ErrInternal, err)
	}

	stageNames, err := uc.stageNamesByID(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}

	existingDates, existingStages := busyOccupancy(shows, stageNames)
	resp.ConflictIndices = FindConflicts(rows, existingDates, existingStages)

	uc.logger.Info("ImportCalendar: venue=%d, %d rows, %d conflicts, %d skipped",
		req.VenueID, len(rows), len(resp.ConflictIndices), skipped)
	return resp, nil
}

func (uc *UseCase) stageNamesByID(ctx context.Context, venueID int64) (map[int64]string, error) {
	stages, err := uc.stageRepo.GetAllByVenue(ctx, venueID)
	if err != nil {
		uc.logger.Error("ImportCalendar: failed to load stages for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to load stages: %v", ErrInternal, err)
	}

	names := make(map[int64]string, len(stages))
	for _, s := range stages {
		names[s.ID] = strings.ToLower(s.Name)
	}
	return names, nil
}

// busyOccupancy строит занятые даты и раскладку занятых сцен по датам
// Шоу без сцены занимает всю площадку: дата попадает в existingDates,
// но раскладка по сценам для нее не ведется
func busyOccupancy(shows []*domain.Show, stageNames map[int64]string) (map[string]struct{}, map[string]map[string]struct{}) {
	query := domain.AvailsQuery{IncludeHolds: true, IncludeConfirms: true}

	existingDates := make(map[string]struct{})
	existingStages := make(map[string]map[string]struct{})
	venueWide := make(map[string]struct{})

	for _, show := range shows {
		if !show.CountsAsBusy(query) {
			continue
		}
		existingDates[show.Date] = struct{}{}

		occupied := show.OccupiedStageIDs()
		if len(occupied) == 0 {
			venueWide[show.Date] = struct{}{}
			continue
		}
		set := existingStages[show.Date]
		if set == nil {
			set = make(map[string]struct{})
			existingStages[show.Date] = set
		}
		for _, id := range occupied {
			if name, ok := stageNames[id]; ok {
				set[name] = struct{}{}
			}
		}
	}

	// Занятость всей площадки перекрывает раскладку по сценам
	for date := range venueWide {
		delete(existingStages, date)
	}

	return existingDates, existingStages
}

func dateBounds(rows []Row) (from, to string) {
	from, to = rows[0].Date, rows[0].Date
	for _, r := range rows[1:] {
		if r.Date < from {
			from = r.Date
		}
		if r.Date > to {
			to = r.Date
		}
	}
	return from, to
}
