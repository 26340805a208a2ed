package import_calendar

import "strings"

// FindConflicts возвращает индексы строк, конфликтующих с занятыми датами
//
// existingDates - занятые даты площадки; existingStages - имена сцен,
// занятых на дату (в нижнем регистре). Строка на занятую дату конфликтует,
// когда ее сцена входит в занятый набор, когда сцена не указана, либо когда
// для даты нет раскладки по сценам (занятость всей площадки).
func FindConflicts(rows []Row, existingDates map[string]struct{}, existingStages map[string]map[string]struct{}) []int {
	conflicts := make([]int, 0)
	for i, row := range rows {
		if _, busy := existingDates[row.Date]; !busy {
			continue
		}

		if row.Stage == "" {
			conflicts = append(conflicts, i)
			continue
		}

		stages, ok := existingStages[row.Date]
		if !ok {
			conflicts = append(conflicts, i)
			continue
		}

		if _, taken := stages[strings.ToLower(row.Stage)]; taken {
			conflicts = append(conflicts, i)
		}
	}
	return conflicts
}
