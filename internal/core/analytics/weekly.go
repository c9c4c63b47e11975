package analytics

import "github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"

// WeeklyStats folds daily records into 7-day chunks. The final chunk covers
// whatever days are left, so its possible count shrinks with it.
func WeeklyStats(days []domain.DayStat, activeCount, periodLength int) []domain.WeekStat {
	weeks := domain.Period{Length: periodLength}.Weeks()
	stats := make([]domain.WeekStat, 0, weeks)

	for w := 1; w <= weeks; w++ {
		start, end := domain.WeekBounds(w, periodLength)

		completed := 0
		for _, d := range days {
			if d.Day >= start && d.Day <= end {
				completed += d.CompletedCount
			}
		}

		possible := (end - start + 1) * activeCount

		stats = append(stats, domain.WeekStat{
			Week:           w,
			Label:          domain.WeekLabel(w),
			StartDay:       start,
			EndDay:         end,
			CompletedCount: completed,
			PossibleCount:  possible,
			Percentage:     percentage(completed, possible),
		})
	}

	return stats
}
