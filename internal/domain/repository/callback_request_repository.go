package repository

import (
	"visus-api/internal/domain/entity"

	"gorm.io/gorm"
)

type CallbackRequestRepository interface {
	Create(db *gorm.DB, request *entity.CallbackRequest) error
	FindAll(db *gorm.DB) ([]entity.CallbackRequest, error)
}
