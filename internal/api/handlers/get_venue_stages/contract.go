package get_venue_stages

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages/models"
)

// StageService интерфейс сервиса сцен
type StageService interface {
	ListByVenue(ctx context.Context, venueID int64) (*models.StageListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
