package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_DayName(t *testing.T) {
	p := DefaultPeriod()

	tests := []struct {
		day  int
		want string
	}{
		{day: 1, want: "Fr"},
		{day: 2, want: "Sa"},
		{day: 3, want: "Su"},
		{day: 9, want: "Sa"},
		{day: 30, want: "Sa"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.DayName(tt.day), "day %d", tt.day)
	}

	monday := Period{Length: 7, DayNameOffset: 1}
	assert.Equal(t, "Mo", monday.DayName(1))
	assert.Equal(t, "Su", monday.DayName(7))

	negative := Period{Length: 7, DayNameOffset: -1}
	assert.Equal(t, "Sa", negative.DayName(1), "Negative offsets wrap around")
}

func TestPeriod_Weeks(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{length: 0, want: 0},
		{length: 1, want: 1},
		{length: 7, want: 1},
		{length: 8, want: 2},
		{length: 28, want: 4},
		{length: 30, want: 5},
		{length: 31, want: 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Period{Length: tt.length}.Weeks(), "length %d", tt.length)
	}
}

func TestWeekBounds_ShortLastWeek(t *testing.T) {
	start, end := WeekBounds(5, 30)
	assert.Equal(t, 29, start)
	assert.Equal(t, 30, end)

	start, end = WeekBounds(2, 30)
	assert.Equal(t, 8, start)
	assert.Equal(t, 14, end)
}

func TestNewPeriod(t *testing.T) {
	_, err := NewPeriod(0, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = NewPeriod(MaxPeriodLength+1, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	p, err := NewPeriod(14, 2)
	assert.NoError(t, err)
	assert.Equal(t, 14, p.Length)
	assert.Len(t, p.DayLabels(), 14)
	assert.Equal(t, DayLabel{Day: 8, Name: "Tu", Week: 2}, p.DayLabels()[7])
}
