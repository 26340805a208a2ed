package cancel_show

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows/models"
)

// ShowService интерфейс сервиса шоу
type ShowService interface {
	Cancel(ctx context.Context, id int64, req *models.CancelShowRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
