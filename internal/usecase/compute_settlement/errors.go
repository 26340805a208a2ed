package compute_settlement

import "errors"

var (
	// ErrShowNotFound возвращается, когда шоу не найдено
	ErrShowNotFound = errors.New("show not found")

	// ErrInvalidShowID возвращается при некорректном ID шоу
	ErrInvalidShowID = errors.New("invalid show id")

	// ErrAlreadyFinalized возвращается при повторной финализации расчёта
	ErrAlreadyFinalized = errors.New("settlement is already finalized")

	// ErrNotSettleable возвращается, когда шоу нельзя рассчитывать
	ErrNotSettleable = errors.New("show must be confirmed, on sale or completed to settle")

	// ErrNotesTooLong возвращается при слишком длинных заметках расчёта
	ErrNotesTooLong = errors.New("settlement notes are too long")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
