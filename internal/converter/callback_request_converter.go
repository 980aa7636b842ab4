package converter

import (
	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
)

func CallbackRequestToResponse(request *entity.CallbackRequest) *dto.CallbackRequestResponse {
	if request == nil {
		return nil
	}

	return &dto.CallbackRequestResponse{
		ID:        request.ID,
		Name:      request.Name,
		Phone:     request.Phone,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
	}
}

func CallbackRequestsToResponses(requests []entity.CallbackRequest) []dto.CallbackRequestResponse {
	responses := make([]dto.CallbackRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *CallbackRequestToResponse(&requests[i])
	}
	return responses
}
