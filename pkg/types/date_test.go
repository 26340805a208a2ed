package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-03-14"))
	assert.False(t, ValidDate("2025-3-14"), "zero padding is required")
	assert.False(t, ValidDate("03/14/2025"))
	assert.False(t, ValidDate("2025-13-01"))
	assert.False(t, ValidDate(""))
}

func TestEnumerateDates(t *testing.T) {
	dates := EnumerateDates("2025-02-27", "2025-03-02")
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, dates)

	// single day range is inclusive on both ends
	assert.Equal(t, []string{"2025-06-01"}, EnumerateDates("2025-06-01", "2025-06-01"))

	// empty or malformed ranges enumerate nothing
	assert.Empty(t, EnumerateDates("2025-06-02", "2025-06-01"))
	assert.Empty(t, EnumerateDates("junk", "2025-06-01"))
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex("2025-03-16")) // Sunday
	assert.Equal(t, 5, WeekdayIndex("2025-03-14")) // Friday
	assert.Equal(t, 6, WeekdayIndex("2025-03-15")) // Saturday
	assert.Equal(t, -1, WeekdayIndex("not-a-date"))
}
