package get_hold_queue

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows/models"
)

// ShowService интерфейс сервиса шоу
type ShowService interface {
	HoldQueue(ctx context.Context, venueID int64, date string, stageID *int64) (*models.HoldQueueResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
