package get_availability

import "errors"

var (
	// ErrInvalidVenueID возвращается при некорректном ID площадки
	ErrInvalidVenueID = errors.New("invalid venue id")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidOnlyDays возвращается при некорректном фильтре дней недели
	ErrInvalidOnlyDays = errors.New("invalid weekday filter: values must be 0 (sun) to 6 (sat)")

	// ErrInvalidStyle возвращается при неизвестном стиле форматирования
	ErrInvalidStyle = errors.New("invalid format style: expected short, long or csv")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
