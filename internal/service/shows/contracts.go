package shows

import (
	"context"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
)

// ShowRepository интерфейс репозитория шоу
type ShowRepository interface {
	Create(ctx context.Context, show *domain.Show) (*domain.Show, error)
	GetByID(ctx context.Context, id int64) (*domain.Show, error)
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueShowsFilter) ([]*domain.Show, error)
	GetHoldsByVenueAndDate(ctx context.Context, venueID int64, date string) ([]*domain.Show, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ShowStatus) error
	ReleaseHold(ctx context.Context, id int64, status domain.ShowStatus) error
	UpdateHoldRank(ctx context.Context, id int64, rank int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
