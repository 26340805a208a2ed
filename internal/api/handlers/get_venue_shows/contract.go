package get_venue_shows

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/service/shows/models"
)

// ShowService интерфейс сервиса шоу
type ShowService interface {
	ListByVenue(ctx context.Context, req *models.ListShowsRequest) (*models.ShowListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
