package database

import (
	"fmt"

	"visus-api/internal/domain/entity"

	"gorm.io/gorm"
)

// Models lists every table owned by this service.
func Models() []interface{} {
	return []interface{}{
		&entity.Doctor{},
		&entity.ServiceItem{},
		&entity.Review{},
		&entity.CallbackRequest{},
		&entity.MediaAsset{},
		&entity.AuditLog{},
	}
}

// Migrate creates missing tables, columns and indexes. Existing data is left alone.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
