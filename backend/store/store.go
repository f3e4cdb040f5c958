// Package store is the persistence layer: users, habits and
// completions behind an explicitly constructed handle. Callers open a
// Store at startup, inject it where needed and Close it on shutdown.
package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"habitmaster/backend/config"
	"habitmaster/backend/models"
)

type Store struct {
	db *gorm.DB
}

// Open connects to the configured database, runs migrations and
// returns a ready Store. TranslateError is enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey on both drivers.
func Open(cfg *config.Config) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	case "postgres":
		dialector = postgres.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == "sqlite" {
		// A single connection serializes writers, and an in-memory
		// sqlite database only exists on the connection that opened it.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Habit{}, &models.Completion{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
