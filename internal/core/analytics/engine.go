// Package analytics derives habit statistics from a completion matrix.
//
// Everything here is a pure function of its arguments: no state is kept
// between calls and nothing can fail. Degenerate inputs (no active habits,
// an empty period) produce zero percentages instead of NaN.
package analytics

import "github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"

// Matrix is the read side of a completion matrix. Missing cells must read as
// false.
type Matrix interface {
	Done(habitID, day int) bool
}

// Compute builds the full Statistics record. Inactive habits are ignored and
// only days 1..periodLength are ever read.
func Compute(habits []domain.Habit, matrix Matrix, periodLength int) domain.Statistics {
	periodLength = max(periodLength, 0)
	active := domain.ActiveHabits(habits)

	perHabit := make([]domain.HabitStat, 0, len(active))
	for _, h := range active {
		perHabit = append(perHabit, HabitProgress(h, matrix, periodLength))
	}

	perDay := DailyStats(active, matrix, periodLength)

	return domain.Statistics{
		PeriodLength:      periodLength,
		ActiveHabitCount:  len(active),
		PerHabit:          perHabit,
		PerDay:            perDay,
		PerWeek:           WeeklyStats(perDay, len(active), periodLength),
		OverallPercentage: OverallPercentage(perHabit, len(active), periodLength),
		BestDay:           BestDay(perDay),
		WorstDay:          WorstDay(perDay),
	}
}

// ComputeBoard is Compute over a board snapshot.
func ComputeBoard(b *domain.Board) domain.Statistics {
	return Compute(b.Habits.Habits(), b.Matrix, b.Period.Length)
}

// percentage returns part/whole*100, or 0 when whole is not positive.
func percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
