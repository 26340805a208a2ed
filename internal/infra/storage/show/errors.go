package show

import "errors"

var (
	// ErrShowNotFound возвращается, когда шоу не найдено
	ErrShowNotFound = errors.New("show.repository: show not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("show.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("show.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("show.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("show.repository: failed to scan row")

	// ErrEncodeExpenses возвращается при ошибке сериализации расходов в jsonb
	ErrEncodeExpenses = errors.New("show.repository: failed to encode expenses")
)
