package stages

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
)

// StageRepository интерфейс репозитория сцен
type StageRepository interface {
	Create(ctx context.Context, stage *domain.Stage) (*domain.Stage, error)
	GetByID(ctx context.Context, id int64) (*domain.Stage, error)
	GetAllByVenue(ctx context.Context, venueID int64) ([]*domain.Stage, error)
	UpdateOperatingHours(ctx context.Context, id int64, hours domain.OperatingHours) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
