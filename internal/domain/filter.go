package domain

// VenueShowsFilter фильтр для выборки шоу площадки
type VenueShowsFilter struct {
	VenueID   int64       // Обязательный параметр
	StageID   *int64      // Шоу, занимающие сцену напрямую или через linked_stage_ids (опционально)
	StartDate *string     // Начало периода, ISO дата (опционально)
	EndDate   *string     // Конец периода, ISO дата (опционально)
	Status    *ShowStatus // Фильтр по статусу (опционально)

	// IncludeCancelled включает отменённые шоу в выборку
	IncludeCancelled bool
}
