package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// HoldRankFallback подставляется вместо отсутствующего hold rank при сортировке.
// Холд без ранга всегда в конце очереди.
const HoldRankFallback = 999

// WeekdayKeys canonical lowercase 3-letter weekday keys, indexed 0=Sunday..6=Saturday
var WeekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// ValidWeekdayKey returns true if key is one of sun..sat
func ValidWeekdayKey(key string) bool {
	for _, k := range WeekdayKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Business validation constants
const (
	MaxTitleLength              = 255
	MaxNameLength               = 255
	MaxSettlementNotesLength    = 2000
	MaxCancellationReasonLength = 500
)
