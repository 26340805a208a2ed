package create_stage

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/service/stages/models"
)

// StageService интерфейс сервиса сцен
type StageService interface {
	Create(ctx context.Context, req *models.CreateStageRequest) (*models.StageResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
