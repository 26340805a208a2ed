package get_availability

import (
	"context"

	uc "github.com/FHLn-git/SoundPath-sub003/internal/usecase/get_availability"
)

// AvailabilityUseCase интерфейс use case подбора свободных дат
type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
