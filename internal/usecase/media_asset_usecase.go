package usecase

import (
	"context"
	"errors"

	"visus-api/internal/converter"
	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
	"visus-api/internal/domain/repository"
	"visus-api/internal/infrastructure/storage"
	"visus-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMediaAssetNotFound   = errors.New("media asset not found")
	ErrUnknownMediaCategory = errors.New("unknown media category")
)

// MediaAssetUsecase scopes every operation to a gallery category. An asset
// addressed under a category it does not belong to is treated as missing.
type MediaAssetUsecase interface {
	GetMediaAssets(ctx context.Context, category string) ([]dto.MediaAssetResponse, error)
	CreateMediaAsset(ctx context.Context, category string, req *dto.MediaAssetRequest) (*dto.MediaAssetResponse, error)
	UpdateMediaAsset(ctx context.Context, category string, id int64, req *dto.MediaAssetRequest) (*dto.MediaAssetResponse, error)
	DeleteMediaAsset(ctx context.Context, category string, id int64) error
}

type mediaAssetUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	mediaRepo    repository.MediaAssetRepository
	fileStorage  storage.FileStorage
	auditService service.AuditService
}

func NewMediaAssetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	mediaRepo repository.MediaAssetRepository,
	fileStorage storage.FileStorage,
	auditService service.AuditService,
) MediaAssetUsecase {
	return &mediaAssetUsecase{
		db:           db,
		log:          log,
		mediaRepo:    mediaRepo,
		fileStorage:  fileStorage,
		auditService: auditService,
	}
}

func (u *mediaAssetUsecase) GetMediaAssets(ctx context.Context, category string) ([]dto.MediaAssetResponse, error) {
	if !entity.IsValidMediaCategory(category) {
		return nil, ErrUnknownMediaCategory
	}

	assets, err := u.mediaRepo.FindAllByCategory(u.db.WithContext(ctx), category)
	if err != nil {
		u.log.Warnf("Failed to find media assets: %+v", err)
		return nil, err
	}

	return converter.MediaAssetsToResponses(assets), nil
}

func (u *mediaAssetUsecase) CreateMediaAsset(ctx context.Context, category string, req *dto.MediaAssetRequest) (*dto.MediaAssetResponse, error) {
	if !entity.IsValidMediaCategory(category) {
		return nil, ErrUnknownMediaCategory
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	asset := &entity.MediaAsset{Category: category}
	converter.ApplyMediaAssetRequest(asset, req)

	if err := u.mediaRepo.Create(tx, asset); err != nil {
		u.log.Warnf("Failed to create media asset: %+v", err)
		return nil, err
	}

	newValue := converter.MediaAssetToResponse(asset)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionMediaCreate, "media_asset", asset.ID, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Created %s media asset %d", category, asset.ID)
	return newValue, nil
}

func (u *mediaAssetUsecase) UpdateMediaAsset(ctx context.Context, category string, id int64, req *dto.MediaAssetRequest) (*dto.MediaAssetResponse, error) {
	if !entity.IsValidMediaCategory(category) {
		return nil, ErrUnknownMediaCategory
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	asset, err := u.findInCategory(tx, category, id)
	if err != nil {
		return nil, err
	}

	oldValue := converter.MediaAssetToResponse(asset)
	converter.ApplyMediaAssetRequest(asset, req)

	if err := u.mediaRepo.Update(tx, asset); err != nil {
		u.log.Warnf("Failed to update media asset: %+v", err)
		return nil, err
	}

	newValue := converter.MediaAssetToResponse(asset)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionMediaUpdate, "media_asset", asset.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Updated %s media asset %d", category, asset.ID)
	return newValue, nil
}

// DeleteMediaAsset removes the photo file first and then the row.
func (u *mediaAssetUsecase) DeleteMediaAsset(ctx context.Context, category string, id int64) error {
	if !entity.IsValidMediaCategory(category) {
		return ErrUnknownMediaCategory
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	asset, err := u.findInCategory(tx, category, id)
	if err != nil {
		return err
	}
	oldValue := converter.MediaAssetToResponse(asset)

	if asset.PhotoURL != "" {
		if err := u.fileStorage.Remove(ctx, asset.PhotoURL); err != nil {
			u.log.Warnf("Failed to remove file %s: %+v", asset.PhotoURL, err)
		}
	}

	affectedRows, err := u.mediaRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete media asset: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrMediaAssetNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionMediaDelete, "media_asset", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Deleted %s media asset %d", category, id)
	return nil
}

func (u *mediaAssetUsecase) findInCategory(tx *gorm.DB, category string, id int64) (*entity.MediaAsset, error) {
	asset, err := u.mediaRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find media asset: %+v", err)
		return nil, err
	}
	if asset == nil || asset.Category != category {
		return nil, ErrMediaAssetNotFound
	}
	return asset, nil
}
