package get_availability

// Стили форматирования выборки дат для буфера обмена
const (
	StyleShort = "short" // "Jun 1, Jun 3, Jun 5"
	StyleLong  = "long"  // "Sunday, June 1, 2025" построчно
	StyleCSV   = "csv"   // ISO даты построчно
)

// NoAvailableDates текст для пустой выборки
const NoAvailableDates = "No available dates"

// Request входные данные use case
type Request struct {
	UserID  int64  `json:"userId"`
	VenueID int64  `json:"venueId"`
	From    string `json:"from"` // YYYY-MM-DD, включительно
	To      string `json:"to"`   // YYYY-MM-DD, включительно

	// StageIDs пустой список означает всю площадку
	StageIDs []int64 `json:"stageIds,omitempty"`

	// OnlyDays фильтр дней недели, 0=sun..6=sat
	OnlyDays []int `json:"onlyDays,omitempty"`

	IncludeHolds    bool `json:"includeHolds,omitempty"`
	IncludeConfirms bool `json:"includeConfirms,omitempty"`

	// Style пустая строка означает short
	Style string `json:"style,omitempty"`
}

// Response результат use case
type Response struct {
	VenueID int64 `json:"venueId"`

	// Dates доступные даты по возрастанию в ISO формате
	Dates []string `json:"dates"`

	// Formatted выборка в запрошенном стиле, готовая для вставки
	Formatted string `json:"formatted"`

	BusyCount int `json:"busyCount"`
}
