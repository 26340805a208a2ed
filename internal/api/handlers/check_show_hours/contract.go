package check_show_hours

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages/models"
)

// StageService интерфейс сервиса сцен
type StageService interface {
	CheckShowHours(ctx context.Context, stageID int64, req *models.CheckHoursRequest) (*models.CheckHoursResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
