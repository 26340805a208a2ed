package import_calendar

import "errors"

var (
	// ErrInvalidVenueID возвращается при некорректном ID площадки
	ErrInvalidVenueID = errors.New("invalid venue id")

	// ErrEmptyPayload возвращается, когда во входных данных нет ни строки
	ErrEmptyPayload = errors.New("empty import payload")

	// ErrMissingColumns возвращается, когда в заголовке нет обязательных колонок
	ErrMissingColumns = errors.New("header must contain a date column and a name, artist or event column")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
