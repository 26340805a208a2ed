package stage

import "errors"

var (
	// ErrStageNotFound возвращается, когда сцена не найдена
	ErrStageNotFound = errors.New("stage.repository: stage not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("stage.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("stage.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("stage.repository: failed to scan row")

	// ErrEncodeHours возвращается при ошибке сериализации расписания в jsonb
	ErrEncodeHours = errors.New("stage.repository: failed to encode operating hours")
)
