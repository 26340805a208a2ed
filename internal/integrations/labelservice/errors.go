package labelservice

import "errors"

var (
	// ErrArtistNotFound возвращается, когда артист не найден в A&R-сервисе
	ErrArtistNotFound = errors.New("artist not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("labelservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("labelservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что LabelService недоступен и расчёт продолжается без
	// денормализованных данных артиста
	ErrServiceDegraded = errors.New("labelservice unavailable: graceful degradation applied")
)
