package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidPeriod = errors.New("period length must be between 1 and 366 days")

const (
	DefaultPeriodLength  = 30
	DefaultDayNameOffset = 5
	MaxPeriodLength      = 366
	WeekSize             = 7
)

var dayNames = [WeekSize]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Period is the fixed run of day indices 1..Length a board tracks. Days are
// plain counters, not calendar dates; DayNameOffset only drives the labels.
type Period struct {
	Length        int `json:"length"`
	DayNameOffset int `json:"day_name_offset"`
}

type DayLabel struct {
	Day  int    `json:"day"`
	Name string `json:"name"`
	Week int    `json:"week"`
}

func NewPeriod(length, dayNameOffset int) (Period, error) {
	if length < 1 || length > MaxPeriodLength {
		return Period{}, fmt.Errorf("%w: got %d", ErrInvalidPeriod, length)
	}
	return Period{Length: length, DayNameOffset: dayNameOffset}, nil
}

func DefaultPeriod() Period {
	return Period{Length: DefaultPeriodLength, DayNameOffset: DefaultDayNameOffset}
}

func (p Period) Contains(day int) bool {
	return day >= 1 && day <= p.Length
}

// DayName returns the two-letter weekday label of a day index.
func (p Period) DayName(day int) string {
	idx := (p.DayNameOffset + day - 1) % WeekSize
	if idx < 0 {
		idx += WeekSize
	}
	return dayNames[idx]
}

// WeekOf returns the 1-based week chunk a day falls in.
func WeekOf(day int) int {
	return (day + WeekSize - 1) / WeekSize
}

// Weeks is ceil(Length / 7).
func (p Period) Weeks() int {
	if p.Length <= 0 {
		return 0
	}
	return WeekOf(p.Length)
}

// WeekBounds returns the first and last day of week w. The last week of a
// period may be shorter than WeekSize.
func WeekBounds(w, periodLength int) (start, end int) {
	start = (w-1)*WeekSize + 1
	end = min(w*WeekSize, periodLength)
	return start, end
}

func WeekLabel(w int) string {
	return fmt.Sprintf("Week %d", w)
}

func (p Period) DayLabels() []DayLabel {
	labels := make([]DayLabel, 0, max(p.Length, 0))
	for day := 1; day <= p.Length; day++ {
		labels = append(labels, DayLabel{Day: day, Name: p.DayName(day), Week: WeekOf(day)})
	}
	return labels
}
