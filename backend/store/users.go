package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"habitmaster/backend/apperr"
	"habitmaster/backend/models"
)

// ResolveOrCreateUser returns the user with the given name, creating
// it on first login. Usernames are unique; two racing first logins
// with the same name both resolve to the single created row.
func (s *Store) ResolveOrCreateUser(username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.Validation("username required")
	}

	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Store("find user", err)
	}

	user = models.User{Username: username}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
				return nil, apperr.Store("find user", err)
			}
			return &user, nil
		}
		return nil, apperr.Store("create user", err)
	}
	return &user, nil
}
