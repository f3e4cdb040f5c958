package store

import (
	"strings"

	"gorm.io/gorm"

	"habitmaster/backend/apperr"
	"habitmaster/backend/models"
)

// CreateHabit inserts a new non-archived habit for the user.
func (s *Store) CreateHabit(userID uint, name string) (*models.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("habit name required")
	}

	habit := models.Habit{UserID: userID, Name: name}
	if err := s.db.Create(&habit).Error; err != nil {
		return nil, apperr.Store("create habit", err)
	}
	return &habit, nil
}

// ActiveHabits lists the user's non-archived habits in insertion
// order. An empty list is a valid result.
func (s *Store) ActiveHabits(userID uint) ([]models.Habit, error) {
	var habits []models.Habit
	err := s.db.
		Where("user_id = ? AND archived = ?", userID, false).
		Order("id").
		Find(&habits).Error
	if err != nil {
		return nil, apperr.Store("list habits", err)
	}
	return habits, nil
}

// DeleteHabit removes the habit together with all of its completions
// in one transaction, so a crash can never leave orphaned completion
// rows. Deleting a habit that does not exist is a no-op success.
func (s *Store) DeleteHabit(habitID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.Completion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Habit{}, habitID).Error
	})
	if err != nil {
		return apperr.Store("delete habit", err)
	}
	return nil
}
