package repository

import (
	"visus-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByID(db *gorm.DB, id int64) (*entity.Review, error)
	FindAll(db *gorm.DB) ([]entity.Review, error)
	Update(db *gorm.DB, review *entity.Review) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
