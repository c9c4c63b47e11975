package analytics

import "github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"

// HabitProgress computes the completion rate and streaks of one habit.
func HabitProgress(h domain.Habit, matrix Matrix, periodLength int) domain.HabitStat {
	done := func(day int) bool { return matrix.Done(h.ID, day) }

	current, longest := Streaks(done, periodLength)
	doneCount := countDone(done, periodLength)

	return domain.HabitStat{
		HabitID:       h.ID,
		Name:          h.Name,
		DoneCount:     doneCount,
		GoalCount:     periodLength,
		Percentage:    percentage(doneCount, periodLength),
		CurrentStreak: current,
		LongestStreak: longest,
	}
}

// Streaks returns the current and longest runs of consecutive done days.
//
// The current streak is anchored at the last day of the period: it counts
// backwards from periodLength and stops at the first missed day.
func Streaks(done func(day int) bool, periodLength int) (current, longest int) {
	run := 0
	for day := 1; day <= periodLength; day++ {
		if done(day) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	for day := periodLength; day >= 1; day-- {
		if !done(day) {
			break
		}
		current++
	}

	return current, longest
}

func countDone(done func(day int) bool, periodLength int) int {
	n := 0
	for day := 1; day <= periodLength; day++ {
		if done(day) {
			n++
		}
	}
	return n
}
