package compute_settlement

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FHLn-git/SoundPath-sub003/internal/domain"
	"github.com/FHLn-git/SoundPath-sub003/internal/integrations/labelservice"
)

// ShowRepository интерфейс репозитория шоу
type ShowRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Show, error)
	FinalizeSettlement(ctx context.Context, id int64, amount decimal.Decimal, notes *string, finalizedAt time.Time) error
}

// LabelServiceClient интерфейс клиента LabelService
type LabelServiceClient interface {
	GetArtistWithGracefulDegradation(ctx context.Context, artistID int64) (*labelservice.Artist, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
