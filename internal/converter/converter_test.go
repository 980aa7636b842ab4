package converter

import (
	"testing"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestApplyDoctorRequestClearsOmittedFields(t *testing.T) {
	years := 10
	doctor := &entity.Doctor{
		ID:              7,
		Name:            "Old",
		Role:            "Old role",
		ExperienceYears: &years,
		DescriptionRu:   strPtr("ru"),
		PhotoURL:        strPtr("doctors/a.jpg"),
	}

	ApplyDoctorRequest(doctor, &dto.DoctorRequest{Name: strPtr("New"), Role: strPtr("New role")})

	assert.Equal(t, int64(7), doctor.ID)
	assert.Equal(t, "New", doctor.Name)
	assert.Nil(t, doctor.ExperienceYears)
	assert.Nil(t, doctor.DescriptionRu)
	assert.Nil(t, doctor.PhotoURL)
}

func TestApplyServiceItemRequestActiveFlag(t *testing.T) {
	yes, no := true, false

	item := &entity.ServiceItem{}
	ApplyServiceItemRequest(item, &dto.ServiceItemRequest{Slug: strPtr("s"), IsActive: &yes})
	assert.True(t, item.IsActive)

	ApplyServiceItemRequest(item, &dto.ServiceItemRequest{Slug: strPtr("s"), IsActive: &no})
	assert.False(t, item.IsActive)
}

func TestApplyMediaAssetRequestKeepsCategory(t *testing.T) {
	asset := &entity.MediaAsset{Category: entity.MediaCategoryInterior, Title: strPtr("t")}

	ApplyMediaAssetRequest(asset, &dto.MediaAssetRequest{
		Category: strPtr(entity.MediaCategoryDiagnostics),
		PhotoURL: strPtr("p.jpg"),
	})

	assert.Equal(t, entity.MediaCategoryInterior, asset.Category)
	assert.Nil(t, asset.Title)
	assert.Equal(t, "p.jpg", asset.PhotoURL)
}

func TestEmptyListsConvertToEmptySlices(t *testing.T) {
	assert.NotNil(t, DoctorsToResponses(nil))
	assert.Empty(t, DoctorsToResponses(nil))
	assert.NotNil(t, CallbackRequestsToResponses(nil))
}
