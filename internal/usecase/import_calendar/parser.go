package import_calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

// Колонки заголовка, распознаются без учета регистра
var (
	nameColumns  = map[string]struct{}{"name": {}, "artist": {}, "event": {}}
	stageColumns = map[string]struct{}{"stage": {}, "venue": {}, "room": {}}
)

// ParseTable разбирает текст таблицы в нормализованные строки импорта
//
// Формат: первая строка - заголовок, разделитель запятая, кавычки не
// поддерживаются. Обязательны колонка date и одна из name/artist/event,
// опциональна stage/venue/room. Строки с нераспознанной датой или пустым
// именем молча отбрасываются и попадают в счетчик skipped.
func ParseTable(payload string) ([]Row, int, error) {
	lines := splitLines(payload)
	if len(lines) == 0 {
		return nil, 0, ErrEmptyPayload
	}

	dateIdx, nameIdx, stageIdx, err := parseHeader(lines[0])
	if err != nil {
		return nil, 0, err
	}

	rows := make([]Row, 0, len(lines)-1)
	skipped := 0
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if dateIdx >= len(fields) || nameIdx >= len(fields) {
			skipped++
			continue
		}

		date, ok := normalizeDate(strings.TrimSpace(fields[dateIdx]))
		if !ok {
			skipped++
			continue
		}

		name := strings.TrimSpace(fields[nameIdx])
		if name == "" {
			skipped++
			continue
		}

		row := Row{Date: date, Name: name}
		if stageIdx >= 0 && stageIdx < len(fields) {
			row.Stage = strings.TrimSpace(fields[stageIdx])
		}
		rows = append(rows, row)
	}

	return rows, skipped, nil
}

func splitLines(payload string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(payload, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func parseHeader(header string) (dateIdx, nameIdx, stageIdx int, err error) {
	dateIdx, nameIdx, stageIdx = -1, -1, -1
	for i, col := range strings.Split(header, ",") {
		key := strings.ToLower(strings.TrimSpace(col))
		switch {
		case key == "date" && dateIdx < 0:
			dateIdx = i
		case nameIdx < 0 && hasColumn(nameColumns, key):
			nameIdx = i
		case stageIdx < 0 && hasColumn(stageColumns, key):
			stageIdx = i
		}
	}
	if dateIdx < 0 || nameIdx < 0 {
		return 0, 0, 0, ErrMissingColumns
	}
	return dateIdx, nameIdx, stageIdx, nil
}

func hasColumn(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

// normalizeDate приводит дату к ISO формату
// Принимает готовый ISO (валидируется) либо американский MM/DD/YYYY
func normalizeDate(raw string) (string, bool) {
	if types.ValidDate(raw) {
		return raw, true
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return "", false
	}

	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}

	iso := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	if !types.ValidDate(iso) {
		return "", false
	}
	return iso, true
}
