package shows

import "errors"

var (
	// ErrShowNotFound возвращается, когда шоу не найдено
	ErrShowNotFound = errors.New("show not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid show status")

	// ErrStatusFrozen возвращается при попытке изменить шоу в терминальном статусе
	ErrStatusFrozen = errors.New("show status is terminal and cannot change")

	// ErrCannotCancel возвращается, когда шоу не может быть отменено
	ErrCannotCancel = errors.New("show cannot be cancelled")

	// ErrNotAHold возвращается, когда операция над холдом применяется к шоу в другом статусе
	ErrNotAHold = errors.New("show is not a hold")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
