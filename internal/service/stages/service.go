package stages

import (
	"context"
	"errors"
	"fmt"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	stageRepo "github.com/FHLn-git/SoundPath-sub003/internal/infra/storage/stage"
	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages/models"
	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

// Service сервис для работы со сценами
type Service struct {
	stageRepo StageRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса сцен
func NewService(stageRepo StageRepository, logger Logger) *Service {
	return &Service{
		stageRepo: stageRepo,
		logger:    logger,
	}
}

// Create создает новую сцену
func (s *Service) Create(ctx context.Context, req *models.CreateStageRequest) (*models.StageResponse, error) {
	s.logger.Info("Create: creating stage for venue=%d, user=%d", req.VenueID, req.UserID)

	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueId is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	stage := req.ToDomainStage()
	if err := stage.OperatingHours.Validate(); err != nil {
		s.logger.Warn("Create: invalid operating hours for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	created, err := s.stageRepo.Create(ctx, stage)
	if err != nil {
		s.logger.Error("Create: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created stage id=%d for venue=%d", created.ID, created.VenueID)
	return models.FromDomainStage(created), nil
}

// GetByID получает сцену по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StageResponse, error) {
	s.logger.Info("GetByID: fetching stage id=%d", id)

	stage, err := s.stageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stageRepo.ErrStageNotFound) {
			s.logger.Warn("GetByID: stage id=%d not found", id)
			return nil, ErrStageNotFound
		}
		s.logger.Error("GetByID: repository error for stage id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStage(stage), nil
}

// ListByVenue получает все сцены площадки
func (s *Service) ListByVenue(ctx context.Context, venueID int64) (*models.StageListResponse, error) {
	s.logger.Info("ListByVenue: fetching stages for venue=%d", venueID)

	stages, err := s.stageRepo.GetAllByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("ListByVenue: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListByVenue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByVenue: successfully fetched %d stages for venue=%d", len(stages), venueID)
	return models.FromDomainStageList(stages), nil
}

// UpdateOperatingHours обновляет рабочие часы сцены
func (s *Service) UpdateOperatingHours(ctx context.Context, id int64, req *models.UpdateHoursRequest) (*models.StageResponse, error) {
	s.logger.Info("UpdateOperatingHours: updating hours for stage id=%d, user=%d", id, req.UserID)

	hours := models.ToDomainOperatingHours(req.OperatingHours)
	if err := hours.Validate(); err != nil {
		s.logger.Warn("UpdateOperatingHours: invalid hours for stage id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	if err := s.stageRepo.UpdateOperatingHours(ctx, id, hours); err != nil {
		if errors.Is(err, stageRepo.ErrStageNotFound) {
			s.logger.Warn("UpdateOperatingHours: stage id=%d not found", id)
			return nil, ErrStageNotFound
		}
		s.logger.Error("UpdateOperatingHours: repository error for stage id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateOperatingHours - repository error: %v", ErrInternal, err)
	}

	stage, err := s.stageRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateOperatingHours: fetch after update failed for stage id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateOperatingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateOperatingHours: successfully updated hours for stage id=%d", id)
	return models.FromDomainStage(stage), nil
}

// CheckShowHours проверяет тайминги шоу против рабочих часов сцены
// Проверяются только doors и curfew, промежуток между ними не анализируется
func (s *Service) CheckShowHours(ctx context.Context, stageID int64, req *models.CheckHoursRequest) (*models.CheckHoursResponse, error) {
	s.logger.Info("CheckShowHours: checking stage id=%d, date=%s", stageID, req.Date)

	if !types.ValidDate(req.Date) {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	stage, err := s.stageRepo.GetByID(ctx, stageID)
	if err != nil {
		if errors.Is(err, stageRepo.ErrStageNotFound) {
			s.logger.Warn("CheckShowHours: stage id=%d not found", stageID)
			return nil, ErrStageNotFound
		}
		s.logger.Error("CheckShowHours: repository error for stage id=%d: %v", stageID, err)
		return nil, fmt.Errorf("%w: CheckShowHours - repository error: %v", ErrInternal, err)
	}

	dayKey := domain.WeekdayKey(req.Date)
	outside := domain.IsOutsideOperatingHours(
		dayKey,
		types.TimeString(req.Doors),
		types.TimeString(req.Curfew),
		stage.OperatingHours,
	)

	s.logger.Info("CheckShowHours: stage id=%d, date=%s (%s) outside=%t", stageID, req.Date, dayKey, outside)
	return &models.CheckHoursResponse{
		StageID:      stageID,
		Date:         req.Date,
		WeekdayKey:   dayKey,
		OutsideHours: outside,
	}, nil
}
