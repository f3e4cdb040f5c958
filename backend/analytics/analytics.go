// Package analytics derives monthly statistics from a month-scoped
// snapshot. Everything here is a pure function of its inputs: no I/O,
// no cached state, identical output for identical input.
package analytics

import (
	"math"

	"habitmaster/backend/models"
)

// Calendar lengths by 0-based month. February is fixed at 28 days
// regardless of year, matching the table the web client ships with.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthNames by 0-based month, as rendered in exports.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DaysInMonth returns the calendar length of the 0-based month, or 0
// for an out-of-range month.
func DaysInMonth(month int) int {
	if month < 0 || month > 11 {
		return 0
	}
	return daysInMonth[month]
}

type Summary struct {
	CompletionRate    int                   `json:"completionRate"`
	TotalChecks       int                   `json:"totalChecks"`
	BestHabit         *models.HabitWithDays `json:"bestHabit"`
	DailyCounts       []int                 `json:"dailyCounts"`
	MostProductiveDay int                   `json:"mostProductiveDay"`
}

// Compute recalculates the full summary from scratch.
//
//   - CompletionRate: round-half-up percentage of checks out of
//     habits x days, 0 when either is 0.
//   - BestHabit: habit with the most checks, first occurrence wins
//     ties; nil when the snapshot is empty.
//   - DailyCounts: habits completed per day, index i holds day i+1.
//   - MostProductiveDay: 1-based day with the highest count, lowest
//     day wins ties; an all-zero month yields day 1.
func Compute(snapshot []models.HabitWithDays, days int) Summary {
	if days < 0 {
		days = 0
	}
	summary := Summary{DailyCounts: make([]int, days)}

	for _, habit := range snapshot {
		summary.TotalChecks += len(habit.CompletedDays)
		for _, day := range habit.CompletedDays {
			if day >= 1 && day <= days {
				summary.DailyCounts[day-1]++
			}
		}
	}

	if possible := len(snapshot) * days; possible > 0 {
		summary.CompletionRate = int(math.Round(100 * float64(summary.TotalChecks) / float64(possible)))
	}

	maxChecks := -1
	for i := range snapshot {
		if len(snapshot[i].CompletedDays) > maxChecks {
			maxChecks = len(snapshot[i].CompletedDays)
			habit := snapshot[i]
			summary.BestHabit = &habit
		}
	}

	maxCount := -1
	for i, count := range summary.DailyCounts {
		if count > maxCount {
			maxCount = count
			summary.MostProductiveDay = i + 1
		}
	}

	return summary
}
