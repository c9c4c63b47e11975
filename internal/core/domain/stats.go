package domain

import "slices"

// Statistics is the read-only derivation of a board. It is recomputed from
// scratch whenever the habits or the completion matrix change.
type Statistics struct {
	PeriodLength      int         `json:"period_length"`
	ActiveHabitCount  int         `json:"active_habit_count"`
	PerHabit          []HabitStat `json:"per_habit"`
	PerDay            []DayStat   `json:"per_day"`
	PerWeek           []WeekStat  `json:"per_week"`
	OverallPercentage float64     `json:"overall_percentage"`
	BestDay           DayStat     `json:"best_day"`
	WorstDay          DayStat     `json:"worst_day"`
}

type HabitStat struct {
	HabitID       int     `json:"habit_id"`
	Name          string  `json:"name"`
	DoneCount     int     `json:"done_count"`
	GoalCount     int     `json:"goal_count"`
	Percentage    float64 `json:"percentage"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
}

type DayStat struct {
	Day              int     `json:"day"`
	CompletedCount   int     `json:"completed_count"`
	ActiveHabitCount int     `json:"active_habit_count"`
	Percentage       float64 `json:"percentage"`
}

type WeekStat struct {
	Week           int     `json:"week"`
	Label          string  `json:"label"`
	StartDay       int     `json:"start_day"`
	EndDay         int     `json:"end_day"`
	CompletedCount int     `json:"completed_count"`
	PossibleCount  int     `json:"possible_count"`
	Percentage     float64 `json:"percentage"`
}

// NoDay is reported as best and worst day of an empty period.
var NoDay = DayStat{Day: 0, CompletedCount: 0}

// Clone returns a copy that shares no slices with s.
func (s *Statistics) Clone() *Statistics {
	if s == nil {
		return nil
	}
	cp := *s
	cp.PerHabit = slices.Clone(s.PerHabit)
	cp.PerDay = slices.Clone(s.PerDay)
	cp.PerWeek = slices.Clone(s.PerWeek)
	return &cp
}
