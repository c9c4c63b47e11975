package analytics

import "github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"

func OverallPercentage(perHabit []domain.HabitStat, activeCount, periodLength int) float64 {
	total := 0
	for _, h := range perHabit {
		total += h.DoneCount
	}
	return percentage(total, activeCount*periodLength)
}

// BestDay returns the first day with the highest completed count. Later ties
// never replace an earlier day.
func BestDay(days []domain.DayStat) domain.DayStat {
	if len(days) == 0 {
		return domain.NoDay
	}

	best := days[0]
	for _, d := range days[1:] {
		if d.CompletedCount > best.CompletedCount {
			best = d
		}
	}
	return best
}

// WorstDay returns the first day with the lowest completed count.
func WorstDay(days []domain.DayStat) domain.DayStat {
	if len(days) == 0 {
		return domain.NoDay
	}

	worst := days[0]
	for _, d := range days[1:] {
		if d.CompletedCount < worst.CompletedCount {
			worst = d
		}
	}
	return worst
}
