package repository

import (
	"errors"

	"visus-api/internal/domain/entity"
	domainRepo "visus-api/internal/domain/repository"

	"gorm.io/gorm"
)

type mediaAssetRepository struct{}

func NewMediaAssetRepository() domainRepo.MediaAssetRepository {
	return &mediaAssetRepository{}
}

func (r *mediaAssetRepository) Create(db *gorm.DB, asset *entity.MediaAsset) error {
	return db.Create(asset).Error
}

func (r *mediaAssetRepository) FindByID(db *gorm.DB, id int64) (*entity.MediaAsset, error) {
	var asset entity.MediaAsset
	err := db.Where("id = ?", id).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

func (r *mediaAssetRepository) FindAllByCategory(db *gorm.DB, category string) ([]entity.MediaAsset, error) {
	var assets []entity.MediaAsset
	err := db.Where("category = ?", category).Order("id").Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *mediaAssetRepository) Update(db *gorm.DB, asset *entity.MediaAsset) error {
	return db.Save(asset).Error
}

func (r *mediaAssetRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.MediaAsset{})
	return result.RowsAffected, result.Error
}
