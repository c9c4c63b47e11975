package analytics

import "github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"

// DailyStats returns one record per day of the period, in day order. The
// habits passed in are assumed active.
func DailyStats(active []domain.Habit, matrix Matrix, periodLength int) []domain.DayStat {
	days := make([]domain.DayStat, 0, max(periodLength, 0))

	for day := 1; day <= periodLength; day++ {
		completed := 0
		for _, h := range active {
			if matrix.Done(h.ID, day) {
				completed++
			}
		}

		days = append(days, domain.DayStat{
			Day:              day,
			CompletedCount:   completed,
			ActiveHabitCount: len(active),
			Percentage:       percentage(completed, len(active)),
		})
	}

	return days
}
