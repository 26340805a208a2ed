package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
		{"19:30:00", 1170},
		// leniency: unparsable components degrade to 0
		{"7", 420},
		{"", 0},
		{"ab:cd", 0},
		{"12:xx", 720},
		{"xx:30", 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeToMinutes(tt.input), "input %q", tt.input)
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		input int
		want  TimeString
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		// wraps modulo 24h
		{1440, "00:00"},
		{1500, "01:00"},
		{-60, "23:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinutesToTime(tt.input), "input %d", tt.input)
	}
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, TimeString("20:15"), TimeString("19:45").AddMinutes(30))
	assert.Equal(t, TimeString("01:00"), TimeString("23:30").AddMinutes(90))
	assert.Equal(t, TimeString("23:00"), TimeString("00:30").AddMinutes(-90))
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 120, DurationMinutes("19:00", "21:00"))
	// no wrap past midnight: overnight spans come back negative,
	// callers that need the overnight duration handle it themselves
	assert.Equal(t, -1200, DurationMinutes("22:00", "02:00"))
	assert.Equal(t, 0, DurationMinutes("12:00", "12:00"))
}

func TestTimeStringCanonicalOutput(t *testing.T) {
	assert.Equal(t, "19:30", TimeString("19:30:00").String())
	assert.Equal(t, "19:30", TimeString("19:30").String())
	assert.Equal(t, "", TimeString("").String())
}

func TestTimeStringStorage(t *testing.T) {
	assert.Equal(t, "19:30:00", TimeString("19:30").Storage())
	assert.Equal(t, "19:30:00", TimeString("19:30:00").Storage())
}

func TestTimeStringValidate(t *testing.T) {
	assert.NoError(t, TimeString("09:30").Validate())
	assert.NoError(t, TimeString("09:30:15").Validate())
	assert.Error(t, TimeString("9:30").Validate())
	assert.Error(t, TimeString("25:00").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("22:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), ts)

	_, err = NewTimeStringFromString("late")
	assert.Error(t, err)
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("21:00:00"))
	assert.Equal(t, "21:00", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
