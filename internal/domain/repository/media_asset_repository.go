package repository

import (
	"visus-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MediaAssetRepository interface {
	Create(db *gorm.DB, asset *entity.MediaAsset) error
	FindByID(db *gorm.DB, id int64) (*entity.MediaAsset, error)
	FindAllByCategory(db *gorm.DB, category string) ([]entity.MediaAsset, error)
	Update(db *gorm.DB, asset *entity.MediaAsset) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
