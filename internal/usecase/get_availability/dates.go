package get_availability

import (
	"strings"
	"time"

	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

// AvailableDates перечисляет даты диапазона [from, to], не занятые шоу
// Результат по возрастанию; onlyDays дополнительно сужает выборку до
// указанных дней недели (0=sun..6=sat)
func AvailableDates(from, to string, busy map[string]struct{}, onlyDays []int) []string {
	var dayFilter map[int]struct{}
	if len(onlyDays) > 0 {
		dayFilter = make(map[int]struct{}, len(onlyDays))
		for _, d := range onlyDays {
			dayFilter[d] = struct{}{}
		}
	}

	all := types.EnumerateDates(from, to)
	available := make([]string, 0, len(all))
	for _, date := range all {
		if _, isBusy := busy[date]; isBusy {
			continue
		}
		if dayFilter != nil {
			if _, ok := dayFilter[types.WeekdayIndex(date)]; !ok {
				continue
			}
		}
		available = append(available, date)
	}
	return available
}

// FormatAvails форматирует выборку дат для буфера обмена агента
// Пустая выборка всегда дает текст NoAvailableDates
func FormatAvails(dates []string, style string) string {
	if len(dates) == 0 {
		return NoAvailableDates
	}

	switch style {
	case StyleLong:
		lines := make([]string, 0, len(dates))
		for _, d := range dates {
			lines = append(lines, formatDate(d, "Monday, January 2, 2006"))
		}
		return strings.Join(lines, "\n")
	case StyleCSV:
		return strings.Join(dates, "\n")
	default:
		parts := make([]string, 0, len(dates))
		for _, d := range dates {
			parts = append(parts, formatDate(d, "Jan 2"))
		}
		return strings.Join(parts, ", ")
	}
}

func formatDate(date, layout string) string {
	t, err := time.Parse(types.DateLayout, date)
	if err != nil {
		// Даты приходят из EnumerateDates и всегда корректны
		return date
	}
	return t.Format(layout)
}
