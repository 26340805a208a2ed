package stages

import "errors"

var (
	// ErrStageNotFound возвращается, когда сцена не найдена
	ErrStageNotFound = errors.New("stage not found")

	// ErrInvalidHours возвращается при некорректных рабочих часах
	ErrInvalidHours = errors.New("invalid operating hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
