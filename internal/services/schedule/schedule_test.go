package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-16 is a Monday
func at(day, hour, minute int) time.Time {
	return time.Date(2025, 6, day, hour, minute, 0, 0, time.UTC)
}

func TestEmptyScheduleIsAlwaysOpen(t *testing.T) {
	weekly, err := New(nil)
	require.NoError(t, err)
	assert.True(t, weekly.AlwaysOpen())
	assert.True(t, weekly.IsOpen(at(16, 3, 0)))

	weekly, err = New(&Config{Days: map[string]Window{}})
	require.NoError(t, err)
	assert.True(t, weekly.IsOpen(at(16, 3, 0)))
}

func TestSameDayWindow(t *testing.T) {
	weekly, err := New(&Config{Days: map[string]Window{
		"monday": {Open: "10:00", Close: "20:00"},
	}})
	require.NoError(t, err)

	assert.False(t, weekly.IsOpen(at(16, 9, 59)))
	assert.True(t, weekly.IsOpen(at(16, 10, 0)))
	assert.True(t, weekly.IsOpen(at(16, 19, 59)))
	assert.False(t, weekly.IsOpen(at(16, 20, 0)))
	assert.False(t, weekly.IsOpen(at(17, 12, 0)), "tuesday has no entry")
}

func TestOvernightWindowSpillsIntoNextDay(t *testing.T) {
	weekly, err := New(&Config{Days: map[string]Window{
		"Friday": {Open: "22:00", Close: "02:00"},
	}})
	require.NoError(t, err)

	friday, saturday := 20, 21
	assert.False(t, weekly.IsOpen(at(friday, 21, 59)))
	assert.True(t, weekly.IsOpen(at(friday, 22, 0)))
	assert.True(t, weekly.IsOpen(at(friday, 23, 59)))
	assert.True(t, weekly.IsOpen(at(saturday, 1, 59)))
	assert.False(t, weekly.IsOpen(at(saturday, 2, 0)))
	assert.False(t, weekly.IsOpen(at(friday, 1, 0)), "thursday had no overnight window")
}

func TestSundayOvernightSpillsIntoMonday(t *testing.T) {
	weekly, err := New(&Config{Days: map[string]Window{
		"sunday": {Open: "20:00", Close: "01:30"},
	}})
	require.NoError(t, err)

	assert.True(t, weekly.IsOpen(at(16, 1, 0)))
	assert.False(t, weekly.IsOpen(at(16, 1, 30)))
}

func TestLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	weekly, err := New(&Config{
		Days:     map[string]Window{"monday": {Open: "10:00", Close: "12:00"}},
		Location: loc,
	})
	require.NoError(t, err)

	// 01:30 UTC Monday is 10:30 Monday in UTC+9
	assert.True(t, weekly.IsOpen(at(16, 1, 30)))
	assert.False(t, weekly.IsOpen(at(16, 10, 30)))
}

func TestNewRejectsBadEntries(t *testing.T) {
	_, err := New(&Config{Days: map[string]Window{"funday": {Open: "10:00", Close: "11:00"}}})
	assert.Error(t, err)

	_, err = New(&Config{Days: map[string]Window{"monday": {Open: "10am", Close: "11:00"}}})
	assert.Error(t, err)

	_, err = New(&Config{Days: map[string]Window{"monday": {Open: "10:00", Close: ""}}})
	assert.Error(t, err)

	weekly, err := New(&Config{Days: map[string]Window{"monday": {Open: "10:00:00", Close: "11:00:30"}}})
	require.NoError(t, err)
	assert.True(t, weekly.IsOpen(at(16, 11, 0)))
}
