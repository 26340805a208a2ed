package compute_settlement

import (
	"context"

	uc "github.com/FHLn-git/SoundPath-sub003/internal/usecase/compute_settlement"
)

// SettlementUseCase интерфейс use case расчёта выплаты
type SettlementUseCase interface {
	Preview(ctx context.Context, req *uc.PreviewRequest) (*uc.Response, error)
	Finalize(ctx context.Context, req *uc.FinalizeRequest) (*uc.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
