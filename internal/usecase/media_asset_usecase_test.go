package usecase

import (
	"path/filepath"
	"strings"
	"testing"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
	"visus-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaAssetUsecase(f *fixture) MediaAssetUsecase {
	return NewMediaAssetUsecase(f.db, f.log, repository.NewMediaAssetRepository(), f.storage, f.auditService)
}

func TestMediaAssetsListedPerCategory(t *testing.T) {
	f := newFixture(t)
	uc := newMediaAssetUsecase(f)
	ctx := adminContext()

	_, err := uc.CreateMediaAsset(ctx, entity.MediaCategoryDiagnostics, &dto.MediaAssetRequest{PhotoURL: strPtr("diagnostics/1.jpg")})
	require.NoError(t, err)
	_, err = uc.CreateMediaAsset(ctx, entity.MediaCategoryInterior, &dto.MediaAssetRequest{PhotoURL: strPtr("interior/1.jpg")})
	require.NoError(t, err)

	diagnostics, err := uc.GetMediaAssets(ctx, entity.MediaCategoryDiagnostics)
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "diagnostics/1.jpg", diagnostics[0].PhotoURL)
	assert.Equal(t, entity.MediaCategoryDiagnostics, diagnostics[0].Category)
}

func TestCreateMediaAssetIgnoresBodyCategory(t *testing.T) {
	f := newFixture(t)
	uc := newMediaAssetUsecase(f)

	created, err := uc.CreateMediaAsset(adminContext(), entity.MediaCategoryInterior, &dto.MediaAssetRequest{
		Category: strPtr(entity.MediaCategoryDiagnostics),
		PhotoURL: strPtr("interior/hall.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MediaCategoryInterior, created.Category)
}

func TestMediaAssetUnknownCategory(t *testing.T) {
	f := newFixture(t)
	uc := newMediaAssetUsecase(f)
	ctx := adminContext()

	_, err := uc.GetMediaAssets(ctx, "exterior")
	assert.ErrorIs(t, err, ErrUnknownMediaCategory)
	_, err = uc.CreateMediaAsset(ctx, "exterior", &dto.MediaAssetRequest{PhotoURL: strPtr("x.jpg")})
	assert.ErrorIs(t, err, ErrUnknownMediaCategory)
	_, err = uc.UpdateMediaAsset(ctx, "exterior", 1, &dto.MediaAssetRequest{PhotoURL: strPtr("x.jpg")})
	assert.ErrorIs(t, err, ErrUnknownMediaCategory)
	assert.ErrorIs(t, uc.DeleteMediaAsset(ctx, "exterior", 1), ErrUnknownMediaCategory)
}

func TestMediaAssetWrongCategoryIsNotFound(t *testing.T) {
	f := newFixture(t)
	uc := newMediaAssetUsecase(f)
	ctx := adminContext()

	created, err := uc.CreateMediaAsset(ctx, entity.MediaCategoryDiagnostics, &dto.MediaAssetRequest{PhotoURL: strPtr("d.jpg")})
	require.NoError(t, err)

	_, err = uc.UpdateMediaAsset(ctx, entity.MediaCategoryInterior, created.ID, &dto.MediaAssetRequest{PhotoURL: strPtr("i.jpg")})
	assert.ErrorIs(t, err, ErrMediaAssetNotFound)
	assert.ErrorIs(t, uc.DeleteMediaAsset(ctx, entity.MediaCategoryInterior, created.ID), ErrMediaAssetNotFound)

	assets, err := uc.GetMediaAssets(ctx, entity.MediaCategoryDiagnostics)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "d.jpg", assets[0].PhotoURL)
}

func TestUpdateMediaAssetKeepsCategory(t *testing.T) {
	f := newFixture(t)
	uc := newMediaAssetUsecase(f)
	ctx := adminContext()

	created, err := uc.CreateMediaAsset(ctx, entity.MediaCategoryInterior, &dto.MediaAssetRequest{
		Title:    strPtr("Холл"),
		PhotoURL: strPtr("interior/a.jpg"),
	})
	require.NoError(t, err)

	updated, err := uc.UpdateMediaAsset(ctx, entity.MediaCategoryInterior, created.ID, &dto.MediaAssetRequest{
		Category: strPtr(entity.MediaCategoryDiagnostics),
		PhotoURL: strPtr("interior/b.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MediaCategoryInterior, updated.Category)
	assert.Equal(t, "interior/b.jpg", updated.PhotoURL)
	assert.Nil(t, updated.Title)
}

func TestDeleteMediaAssetRemovesFile(t *testing.T) {
	f := newFixture(t)
	uc := newMediaAssetUsecase(f)
	ctx := adminContext()

	obj, err := f.storage.Save(ctx, strings.NewReader("img"), "room.jpg", "interior", "")
	require.NoError(t, err)

	created, err := uc.CreateMediaAsset(ctx, entity.MediaCategoryInterior, &dto.MediaAssetRequest{PhotoURL: strPtr(obj.URL)})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteMediaAsset(ctx, entity.MediaCategoryInterior, created.ID))

	assert.NoFileExists(t, filepath.Join(f.storage.Root(), filepath.FromSlash(obj.Path)))
	assets, err := uc.GetMediaAssets(ctx, entity.MediaCategoryInterior)
	require.NoError(t, err)
	assert.Empty(t, assets)
}
