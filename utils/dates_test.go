package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dramaboy123/dramabot9531/utils"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMidnight(t *testing.T) {
	late := time.Date(2025, 3, 14, 23, 59, 58, 123, time.UTC)
	assert.Equal(t, day(2025, 3, 14), utils.Midnight(late))
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC)
	night := time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)
	assert.True(t, utils.SameDate(morning, night))
	assert.False(t, utils.SameDate(morning, morning.AddDate(0, 0, 1)))
	assert.False(t, utils.SameDate(morning, morning.AddDate(1, 0, 0)))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-03-14", day(2025, 3, 14)},
		{"14/03/2025", day(2025, 3, 14)},
		{"14-03-2025", day(2025, 3, 14)},
	}
	for _, tt := range tests {
		got, err := utils.ParseDate(tt.input)
		require.NoError(t, err, tt.input)
		assert.True(t, got.Equal(tt.want), tt.input)
	}

	_, err := utils.ParseDate("14 March 2025")
	assert.Error(t, err)
	_, err = utils.ParseDate("")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "14 Mar 2025", utils.FormatDate(day(2025, 3, 14)))
}

func TestDateRange(t *testing.T) {
	dates := utils.DateRange(day(2025, 1, 30), day(2025, 2, 2))
	require.Len(t, dates, 4)
	assert.Equal(t, day(2025, 1, 30), dates[0])
	assert.Equal(t, day(2025, 2, 2), dates[3])

	single := utils.DateRange(day(2025, 1, 30), day(2025, 1, 30))
	assert.Len(t, single, 1)

	empty := utils.DateRange(day(2025, 1, 30), day(2025, 1, 29))
	assert.Empty(t, empty)
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		start time.Time
	}{
		{"monday", day(2025, 1, 6), day(2025, 1, 6)},
		{"midweek", day(2025, 1, 8), day(2025, 1, 6)},
		{"sunday", day(2025, 1, 12), day(2025, 1, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := utils.WeekRange(tt.in)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.start.AddDate(0, 0, 6), end)
		})
	}
}

func TestMonthRange(t *testing.T) {
	start, end := utils.MonthRange(day(2025, 2, 14))
	assert.Equal(t, day(2025, 2, 1), start)
	assert.Equal(t, day(2025, 2, 28), end)

	start, end = utils.MonthRange(day(2024, 2, 10))
	assert.Equal(t, day(2024, 2, 1), start)
	assert.Equal(t, day(2024, 2, 29), end)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, utils.Nights(day(2025, 1, 10), day(2025, 1, 13)))
	assert.Equal(t, 0, utils.Nights(day(2025, 1, 10), day(2025, 1, 10)))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, utils.IsWeekend(day(2025, 1, 11)))  // Saturday
	assert.True(t, utils.IsWeekend(day(2025, 1, 12)))  // Sunday
	assert.False(t, utils.IsWeekend(day(2025, 1, 13))) // Monday
}
