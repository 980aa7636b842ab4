package usecase

import (
	"context"
	"testing"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceItemUsecase(f *fixture) ServiceItemUsecase {
	return NewServiceItemUsecase(f.db, f.log, repository.NewServiceItemRepository(), f.auditService)
}

func serviceRequest(slug string, active bool) *dto.ServiceItemRequest {
	return &dto.ServiceItemRequest{
		Slug:     strPtr(slug),
		TitleRu:  strPtr("Услуга " + slug),
		TitleKk:  strPtr("Қызмет " + slug),
		IsActive: boolPtr(active),
	}
}

func TestPublicServicesHideInactive(t *testing.T) {
	f := newFixture(t)
	uc := newServiceItemUsecase(f)
	ctx := adminContext()

	_, err := uc.CreateService(ctx, serviceRequest("a", true))
	require.NoError(t, err)
	_, err = uc.CreateService(ctx, serviceRequest("b", false))
	require.NoError(t, err)

	public, err := uc.GetActiveServices(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "a", public[0].Slug)

	all, err := uc.GetAllServices(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Slug)
	assert.True(t, all[0].IsActive)
	assert.Equal(t, "b", all[1].Slug)
	assert.False(t, all[1].IsActive)
}

func TestUpdateServiceCanDeactivate(t *testing.T) {
	f := newFixture(t)
	uc := newServiceItemUsecase(f)
	ctx := adminContext()

	created, err := uc.CreateService(ctx, serviceRequest("a", true))
	require.NoError(t, err)

	updated, err := uc.UpdateService(ctx, created.ID, serviceRequest("a", false))
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	public, err := uc.GetActiveServices(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)
}

func TestCreateServiceDuplicateSlugFails(t *testing.T) {
	f := newFixture(t)
	uc := newServiceItemUsecase(f)
	ctx := adminContext()

	_, err := uc.CreateService(ctx, serviceRequest("dup", true))
	require.NoError(t, err)

	_, err = uc.CreateService(ctx, serviceRequest("dup", true))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrServiceNotFound)

	all, err := uc.GetAllServices(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestServiceNotFound(t *testing.T) {
	f := newFixture(t)
	uc := newServiceItemUsecase(f)
	ctx := adminContext()

	_, err := uc.UpdateService(ctx, 7, serviceRequest("x", true))
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, uc.DeleteService(ctx, 7), ErrServiceNotFound)
}

func TestDeleteService(t *testing.T) {
	f := newFixture(t)
	uc := newServiceItemUsecase(f)
	ctx := adminContext()

	created, err := uc.CreateService(ctx, serviceRequest("a", true))
	require.NoError(t, err)
	require.NoError(t, uc.DeleteService(ctx, created.ID))

	all, err := uc.GetAllServices(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
