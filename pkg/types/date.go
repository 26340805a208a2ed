package types

import "time"

// DateLayout формат календарной даты, используется по всему сервису
const DateLayout = "2006-01-02"

// ValidDate returns true if s is a well-formed zero-padded ISO date
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// EnumerateDates returns every calendar day in [from, to] inclusive, ascending,
// as ISO date strings. Returns an empty slice when the range is empty or either
// bound is malformed.
func EnumerateDates(from, to string) []string {
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return []string{}
	}
	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return []string{}
	}

	dates := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// WeekdayIndex returns the weekday of an ISO date as 0=Sunday..6=Saturday.
// The date is anchored at local noon so that a timezone conversion can never
// shift it onto the neighbouring day. Returns -1 for a malformed date.
func WeekdayIndex(date string) int {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return -1
	}
	anchored := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
	return int(anchored.Weekday())
}
