package converter

import (
	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
)

func MediaAssetToResponse(asset *entity.MediaAsset) *dto.MediaAssetResponse {
	if asset == nil {
		return nil
	}

	return &dto.MediaAssetResponse{
		ID:          asset.ID,
		Category:    asset.Category,
		Title:       asset.Title,
		Description: asset.Description,
		PhotoURL:    asset.PhotoURL,
	}
}

func MediaAssetsToResponses(assets []entity.MediaAsset) []dto.MediaAssetResponse {
	responses := make([]dto.MediaAssetResponse, len(assets))
	for i := range assets {
		responses[i] = *MediaAssetToResponse(&assets[i])
	}
	return responses
}

// ApplyMediaAssetRequest overwrites the editable fields of asset from req.
// Category is not editable.
func ApplyMediaAssetRequest(asset *entity.MediaAsset, req *dto.MediaAssetRequest) {
	asset.Title = req.Title
	asset.Description = req.Description
	asset.PhotoURL = StringValue(req.PhotoURL)
}
