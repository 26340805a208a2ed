package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// TimeString represents a time of day as a string.
// Canonical form is "HH:MM"; "HH:MM:SS" is accepted on input because that is
// how the values come back from postgres.
type TimeString string

// NewTimeString creates a TimeString from a time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString creates a TimeString from a raw string with strict validation
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// TimeToMinutes converts "HH:MM" or "HH:MM:SS" to minutes since midnight (0-1439).
// Parsing is deliberately lenient: a missing or unparsable component counts as 0
// instead of failing, so malformed external records degrade instead of erroring.
func TimeToMinutes(s string) int {
	parts := strings.Split(s, ":")

	hours := 0
	if len(parts) > 0 {
		if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			hours = h
		}
	}

	mins := 0
	if len(parts) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			mins = m
		}
	}

	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to a canonical "HH:MM" TimeString.
// Values outside a single day wrap modulo 24h; negatives wrap backwards.
func MinutesToTime(m int) TimeString {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// Minutes returns the time as minutes since midnight
func (t TimeString) Minutes() int {
	return TimeToMinutes(string(t))
}

// AddMinutes returns the time shifted by n minutes, wrapping past midnight
func (t TimeString) AddMinutes(n int) TimeString {
	return MinutesToTime(t.Minutes() + n)
}

// DurationMinutes возвращает end - start в минутах.
// НЕ переходит через полночь: для ночных интервалов результат отрицательный,
// и вызывающая сторона обязана обработать это сама.
func DurationMinutes(start, end TimeString) int {
	return end.Minutes() - start.Minutes()
}

// IsBefore returns true if t is strictly earlier in the day than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter returns true if t is strictly later in the day than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// IsZero returns true if the time is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the canonical "HH:MM" form
func (t TimeString) String() string {
	if t.IsZero() {
		return ""
	}
	return string(MinutesToTime(t.Minutes()))
}

// Storage returns the "HH:MM:SS" form used by the database
func (t TimeString) Storage() string {
	s := string(t)
	if len(s) == 5 {
		return s + ":00"
	}
	return s
}

// Validate checks that the value is a well-formed "HH:MM" or "HH:MM:SS" time
func (t TimeString) Validate() error {
	s := string(t)

	var layout string
	switch len(s) {
	case 5:
		layout = "15:04"
	case 8:
		layout = "15:04:05"
	default:
		return fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", s)
	}

	if _, err := time.Parse(layout, s); err != nil {
		return fmt.Errorf("invalid time %q: %v", s, err)
	}
	return nil
}

// Value implements driver.Valuer for persistence
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Storage(), nil
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}
