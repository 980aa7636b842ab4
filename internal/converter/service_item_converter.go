package converter

import (
	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
)

// ServiceItemToResponse converts a ServiceItem entity to ServiceItemResponse DTO
func ServiceItemToResponse(item *entity.ServiceItem) *dto.ServiceItemResponse {
	if item == nil {
		return nil
	}

	return &dto.ServiceItemResponse{
		ID:                 item.ID,
		Slug:               item.Slug,
		TitleRu:            item.TitleRu,
		TitleKk:            item.TitleKk,
		ShortDescriptionRu: item.ShortDescriptionRu,
		ShortDescriptionKk: item.ShortDescriptionKk,
		FullDescriptionRu:  item.FullDescriptionRu,
		FullDescriptionKk:  item.FullDescriptionKk,
		IsActive:           item.IsActive,
	}
}

func ServiceItemsToResponses(items []entity.ServiceItem) []dto.ServiceItemResponse {
	responses := make([]dto.ServiceItemResponse, len(items))
	for i := range items {
		responses[i] = *ServiceItemToResponse(&items[i])
	}
	return responses
}

// ApplyServiceItemRequest overwrites every editable field of item from req.
func ApplyServiceItemRequest(item *entity.ServiceItem, req *dto.ServiceItemRequest) {
	item.Slug = StringValue(req.Slug)
	item.TitleRu = StringValue(req.TitleRu)
	item.TitleKk = StringValue(req.TitleKk)
	item.ShortDescriptionRu = req.ShortDescriptionRu
	item.ShortDescriptionKk = req.ShortDescriptionKk
	item.FullDescriptionRu = req.FullDescriptionRu
	item.FullDescriptionKk = req.FullDescriptionKk
	item.IsActive = req.IsActive != nil && *req.IsActive
}
