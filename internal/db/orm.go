package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "openskies/airfield/internal/models/gorm"
)

// InitPostgresORM connects via GORM and migrates the user store.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := conn.AutoMigrate(&gormModels.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate users: %w", err)
	}

	return conn, nil
}
