package import_calendar

// Request входные данные импорта
// Payload - сырой текст таблицы: первая строка заголовок, дальше данные
type Request struct {
	UserID  int64  `json:"userId"`
	VenueID int64  `json:"venueId"`
	Payload string `json:"payload"`
}

// Row нормализованная строка импорта
type Row struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Name  string `json:"name"`
	Stage string `json:"stage,omitempty"`
}

// Response результат импорта
type Response struct {
	VenueID int64 `json:"venueId"`

	// Rows нормализованные строки в порядке появления во входных данных
	Rows []Row `json:"rows"`

	// ConflictIndices индексы строк Rows, конфликтующих с занятыми датами
	ConflictIndices []int `json:"conflictIndices"`

	// SkippedRows строки, молча отброшенные парсером
	SkippedRows int `json:"skippedRows"`
}
