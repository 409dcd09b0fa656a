package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hirebridge/hirebridge/internal/models"
)

// Connect opens the Postgres connection and runs migrations. It is called
// once in main before the server accepts traffic; the handle is passed down
// explicitly rather than kept in a package global.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		// Surfaces duplicate-key violations as gorm.ErrDuplicatedKey so the
		// repositories can translate them.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}
