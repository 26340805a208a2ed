package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FHLn-git/SoundPath-sub003/pkg/types"
)

func TestWeekdayKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-14", "fri"},
		{"2025-03-16", "sun"},
		{"2025-03-17", "mon"},
		{"2025-12-31", "wed"},
		{"not-a-date", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekdayKey(tt.date), "date %s", tt.date)
	}
}

func TestTimeWithinWindow(t *testing.T) {
	tests := []struct {
		name             string
		tm, start, end   types.TimeString
		want             bool
	}{
		{"same-day inside", "12:00", "09:00", "17:00", true},
		{"same-day at start", "09:00", "09:00", "17:00", true},
		{"same-day at end", "17:00", "09:00", "17:00", true},
		{"same-day before", "08:59", "09:00", "17:00", false},
		{"same-day after", "17:01", "09:00", "17:00", false},
		{"overnight late evening", "23:30", "22:00", "02:00", true},
		{"overnight after midnight", "01:15", "22:00", "02:00", true},
		{"overnight at start", "22:00", "22:00", "02:00", true},
		{"overnight at end", "02:00", "22:00", "02:00", true},
		{"overnight midday", "10:00", "22:00", "02:00", false},
		{"overnight just outside", "02:01", "22:00", "02:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeWithinWindow(tt.tm, tt.start, tt.end))
		})
	}
}

func TestIsTimeWithinOperatingHours(t *testing.T) {
	hours := OperatingHours{
		"fri": {Start: "22:00", End: "02:00"},
		"sat": {Start: "18:00", End: "23:30"},
	}

	assert.True(t, IsTimeWithinOperatingHours("fri", "23:30", hours))
	assert.False(t, IsTimeWithinOperatingHours("fri", "10:00", hours))
	assert.True(t, IsTimeWithinOperatingHours("sat", "18:00", hours))
	// closed day contains nothing
	assert.False(t, IsTimeWithinOperatingHours("mon", "12:00", hours))
}

func TestIsOutsideOperatingHours(t *testing.T) {
	hours := OperatingHours{
		"fri": {Start: "18:00", End: "02:00"},
		"sun": {Start: "12:00", End: "20:00"},
		"mon": nil, // explicitly closed
	}

	tests := []struct {
		name          string
		dayKey        string
		doors, curfew types.TimeString
		want          bool
	}{
		{"both inside overnight", "fri", "19:00", "01:00", false},
		{"doors outside", "fri", "16:00", "01:00", true},
		{"curfew outside", "fri", "19:00", "03:00", true},
		{"both inside same-day", "sun", "13:00", "19:30", false},
		{"closed day", "tue", "12:00", "13:00", true},
		{"nil window", "mon", "12:00", "13:00", true},
		// endpoints are checked independently; the span between them is not
		{"endpoints wrap a closed interior", "sun", "20:00", "12:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOutsideOperatingHours(tt.dayKey, tt.doors, tt.curfew, hours))
		})
	}
}

func TestOperatingHoursValidate(t *testing.T) {
	valid := OperatingHours{
		"fri": {Start: "18:00", End: "02:00"},
		"sat": nil,
	}
	assert.NoError(t, valid.Validate())

	badKey := OperatingHours{"friday": {Start: "18:00", End: "23:00"}}
	assert.Error(t, badKey.Validate())

	badTime := OperatingHours{"fri": {Start: "18h00", End: "23:00"}}
	assert.Error(t, badTime.Validate())
}
