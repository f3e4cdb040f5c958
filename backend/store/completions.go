package store

import (
	"errors"

	"gorm.io/gorm"

	"habitmaster/backend/apperr"
	"habitmaster/backend/models"
)

// Toggle statuses.
const (
	StatusAdded   = "added"
	StatusRemoved = "removed"
)

// Toggle flips the completion mark for one (habit, day, month, year)
// tuple: present rows are deleted, absent rows are inserted. It is a
// flip, not a set-to-value operation, so retrying the same network
// request inverts the result again.
//
// Concurrency: the delete is atomic, and the unique index on the tuple
// makes a racing insert fail with gorm.ErrDuplicatedKey instead of
// writing a second row. Losing that race means a concurrent toggle
// already added the mark, so the end state the caller asked for holds
// and we report "added" without inserting.
func (s *Store) Toggle(habitID uint, day, month, year int) (string, error) {
	res := s.db.
		Where("habit_id = ? AND day = ? AND month = ? AND year = ?", habitID, day, month, year).
		Delete(&models.Completion{})
	if res.Error != nil {
		return "", apperr.Store("toggle delete", res.Error)
	}
	if res.RowsAffected > 0 {
		return StatusRemoved, nil
	}

	completion := models.Completion{HabitID: habitID, Day: day, Month: month, Year: year}
	if err := s.db.Create(&completion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return StatusAdded, nil
		}
		return "", apperr.Store("toggle insert", err)
	}
	return StatusAdded, nil
}

// CompletionsFor returns the completed day numbers for one habit in
// one month. The caller treats the result as a set.
func (s *Store) CompletionsFor(habitID uint, month, year int) ([]int, error) {
	days := make([]int, 0)
	err := s.db.Model(&models.Completion{}).
		Where("habit_id = ? AND month = ? AND year = ?", habitID, month, year).
		Order("day").
		Pluck("day", &days).Error
	if err != nil {
		return nil, apperr.Store("list completions", err)
	}
	return days, nil
}

// MonthSnapshot joins the user's active habits with their completed
// days for the given month. Habit order matches creation order.
func (s *Store) MonthSnapshot(userID uint, month, year int) ([]models.HabitWithDays, error) {
	habits, err := s.ActiveHabits(userID)
	if err != nil {
		return nil, err
	}

	snapshot := make([]models.HabitWithDays, 0, len(habits))
	for _, habit := range habits {
		days, err := s.CompletionsFor(habit.ID, month, year)
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, models.HabitWithDays{
			ID:            habit.ID,
			Name:          habit.Name,
			CompletedDays: days,
		})
	}
	return snapshot, nil
}
