package domain

import (
	"fmt"

	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

// HoursWindow одно окно работы сцены: от открытия до комендантского часа
type HoursWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// OperatingHours weekly schedule of a stage keyed by sun..sat.
// A missing or nil entry means the stage is closed that day.
type OperatingHours map[string]*HoursWindow

// WeekdayKey maps an ISO date to one of sun..sat. The underlying conversion
// anchors the date at local noon so a timezone boundary can never shift the
// weekday. Returns "" for a malformed date.
func WeekdayKey(date string) string {
	idx := types.WeekdayIndex(date)
	if idx < 0 {
		return ""
	}
	return WeekdayKeys[idx]
}

// TimeWithinWindow reports whether t falls inside [start, end].
// A same-day window (start <= end) contains t iff start <= t <= end.
// An overnight window (start > end, e.g. 18:00-02:00) contains t iff
// t >= start OR t <= end.
func TimeWithinWindow(t, start, end types.TimeString) bool {
	tm := t.Minutes()
	s := start.Minutes()
	e := end.Minutes()

	if s <= e {
		return tm >= s && tm <= e
	}
	return tm >= s || tm <= e
}

// IsTimeWithinOperatingHours reports whether t is inside the stage's window
// for the given weekday. A closed day contains nothing.
func IsTimeWithinOperatingHours(dayKey string, t types.TimeString, hours OperatingHours) bool {
	window := hours[dayKey]
	if window == nil {
		return false
	}
	return TimeWithinWindow(t, window.Start, window.End)
}

// IsOutsideOperatingHours reports a conflict unless the day has a window AND
// both doors and curfew individually satisfy the containment rule.
//
// Оба конца проверяются независимо; сам интервал doors-curfew на попадание
// в окно не проверяется. Узкое окно может пропустить оба конца, хотя середина
// шоу выпадает наружу - поведение сохранено до прояснения продуктовой логики.
func IsOutsideOperatingHours(dayKey string, doors, curfew types.TimeString, hours OperatingHours) bool {
	window := hours[dayKey]
	if window == nil {
		return true
	}
	return !TimeWithinWindow(doors, window.Start, window.End) ||
		!TimeWithinWindow(curfew, window.Start, window.End)
}

// Validate checks weekday keys and window times of a weekly schedule
func (h OperatingHours) Validate() error {
	for key, window := range h {
		if !ValidWeekdayKey(key) {
			return fmt.Errorf("invalid weekday key %q: expected one of sun..sat", key)
		}
		if window == nil {
			continue
		}
		if err := window.Start.Validate(); err != nil {
			return fmt.Errorf("day %s: invalid start: %v", key, err)
		}
		if err := window.End.Validate(); err != nil {
			return fmt.Errorf("day %s: invalid end: %v", key, err)
		}
	}
	return nil
}
