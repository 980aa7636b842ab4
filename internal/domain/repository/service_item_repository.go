package repository

import (
	"visus-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceItemRepository interface {
	Create(db *gorm.DB, item *entity.ServiceItem) error
	FindByID(db *gorm.DB, id int64) (*entity.ServiceItem, error)
	FindAll(db *gorm.DB) ([]entity.ServiceItem, error)
	FindAllActive(db *gorm.DB) ([]entity.ServiceItem, error)
	Update(db *gorm.DB, item *entity.ServiceItem) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
