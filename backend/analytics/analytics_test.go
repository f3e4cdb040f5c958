package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitmaster/backend/analytics"
	"habitmaster/backend/models"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, analytics.DaysInMonth(0))
	assert.Equal(t, 28, analytics.DaysInMonth(1)) // fixed February, no leap handling
	assert.Equal(t, 30, analytics.DaysInMonth(3))
	assert.Equal(t, 31, analytics.DaysInMonth(11))
	assert.Equal(t, 0, analytics.DaysInMonth(-1))
	assert.Equal(t, 0, analytics.DaysInMonth(12))
}

func TestComputeEmptySnapshot(t *testing.T) {
	summary := analytics.Compute(nil, 31)

	assert.Equal(t, 0, summary.CompletionRate)
	assert.Equal(t, 0, summary.TotalChecks)
	assert.Nil(t, summary.BestHabit)
	assert.Equal(t, make([]int, 31), summary.DailyCounts)
	assert.Equal(t, 1, summary.MostProductiveDay)
}

func TestComputeZeroDays(t *testing.T) {
	snapshot := []models.HabitWithDays{{ID: 1, Name: "Run", CompletedDays: []int{1}}}
	summary := analytics.Compute(snapshot, 0)

	assert.Equal(t, 0, summary.CompletionRate)
	assert.Empty(t, summary.DailyCounts)
	assert.Equal(t, 0, summary.MostProductiveDay)
}

func TestComputeExampleScenario(t *testing.T) {
	// Two habits in January, one check on day 5 of "Read".
	snapshot := []models.HabitWithDays{
		{ID: 1, Name: "Run", CompletedDays: []int{}},
		{ID: 2, Name: "Read", CompletedDays: []int{5}},
	}
	summary := analytics.Compute(snapshot, analytics.DaysInMonth(0))

	assert.Equal(t, 1, summary.TotalChecks)
	assert.Equal(t, 2, summary.CompletionRate) // round(100*1/62)
	require.NotNil(t, summary.BestHabit)
	assert.Equal(t, "Read", summary.BestHabit.Name)
	assert.Equal(t, 5, summary.MostProductiveDay)
	assert.Equal(t, 1, summary.DailyCounts[4])
}

func TestComputeRoundsHalfUp(t *testing.T) {
	// 1 habit, 10 days, 1 check -> exactly 10%.
	snapshot := []models.HabitWithDays{{ID: 1, Name: "Run", CompletedDays: []int{1}}}
	assert.Equal(t, 10, analytics.Compute(snapshot, 10).CompletionRate)

	// 2 habits, 28 days: 25/56 = 44.64 -> 45.
	snapshot = []models.HabitWithDays{
		{ID: 1, Name: "Run", CompletedDays: rangeDays(1, 25)},
		{ID: 2, Name: "Read", CompletedDays: []int{}},
	}
	assert.Equal(t, 45, analytics.Compute(snapshot, 28).CompletionRate)

	// 1 habit, 8 days, 1 check: 12.5 -> 13 (half rounds up).
	snapshot = []models.HabitWithDays{{ID: 1, Name: "Run", CompletedDays: []int{3}}}
	assert.Equal(t, 13, analytics.Compute(snapshot, 8).CompletionRate)
}

func TestComputeBestHabitFirstMax(t *testing.T) {
	snapshot := []models.HabitWithDays{
		{ID: 1, Name: "Run", CompletedDays: []int{1, 2}},
		{ID: 2, Name: "Read", CompletedDays: []int{3, 4}},
		{ID: 3, Name: "Meditate", CompletedDays: []int{5}},
	}
	summary := analytics.Compute(snapshot, 31)

	require.NotNil(t, summary.BestHabit)
	assert.Equal(t, "Run", summary.BestHabit.Name) // tie with Read, first wins
}

func TestComputeMostProductiveDayFirstMax(t *testing.T) {
	snapshot := []models.HabitWithDays{
		{ID: 1, Name: "Run", CompletedDays: []int{3, 9}},
		{ID: 2, Name: "Read", CompletedDays: []int{3, 9}},
	}
	summary := analytics.Compute(snapshot, 31)

	assert.Equal(t, 3, summary.MostProductiveDay) // tie with day 9, lowest wins
}

func TestComputeAllZeroCounts(t *testing.T) {
	snapshot := []models.HabitWithDays{
		{ID: 1, Name: "Run", CompletedDays: []int{}},
	}
	summary := analytics.Compute(snapshot, 30)

	assert.Equal(t, 1, summary.MostProductiveDay)
	assert.Equal(t, make([]int, 30), summary.DailyCounts)
}

func TestComputeIgnoresOutOfRangeDays(t *testing.T) {
	// Day 31 checked in a 30-day month still counts toward TotalChecks
	// but not toward any daily bucket, same as the reference view.
	snapshot := []models.HabitWithDays{
		{ID: 1, Name: "Run", CompletedDays: []int{31}},
	}
	summary := analytics.Compute(snapshot, 30)

	assert.Equal(t, 1, summary.TotalChecks)
	assert.Equal(t, make([]int, 30), summary.DailyCounts)
}

func TestComputeDeterministic(t *testing.T) {
	snapshot := []models.HabitWithDays{
		{ID: 1, Name: "Run", CompletedDays: []int{1, 5, 9}},
		{ID: 2, Name: "Read", CompletedDays: []int{5}},
	}

	first := analytics.Compute(snapshot, 31)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, analytics.Compute(snapshot, 31))
	}
}

func rangeDays(from, to int) []int {
	days := make([]int, 0, to-from+1)
	for d := from; d <= to; d++ {
		days = append(days, d)
	}
	return days
}
