package create_show

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows/models"
)

// ShowService интерфейс сервиса шоу
type ShowService interface {
	Create(ctx context.Context, req *models.CreateShowRequest) (*models.ShowResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
