package import_calendar

import (
	"context"

	uc "github.com/FHLn-git/SoundPath-sub003/internal/usecase/import_calendar"
)

// ImportUseCase интерфейс use case импорта календаря
type ImportUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
