package get_availability

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
)

// ShowRepository интерфейс репозитория шоу
type ShowRepository interface {
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueShowsFilter) ([]*domain.Show, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
