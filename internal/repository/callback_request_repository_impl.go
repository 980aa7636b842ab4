package repository

import (
	"visus-api/internal/domain/entity"
	domainRepo "visus-api/internal/domain/repository"

	"gorm.io/gorm"
)

type callbackRequestRepository struct{}

func NewCallbackRequestRepository() domainRepo.CallbackRequestRepository {
	return &callbackRequestRepository{}
}

func (r *callbackRequestRepository) Create(db *gorm.DB, request *entity.CallbackRequest) error {
	return db.Create(request).Error
}

// FindAll returns requests newest first, which is how staff work the queue.
func (r *callbackRequestRepository) FindAll(db *gorm.DB) ([]entity.CallbackRequest, error) {
	var requests []entity.CallbackRequest
	err := db.Order("created_at DESC").Order("id DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
