package handler

import (
	"errors"
	"net/http"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/usecase"
	"visus-api/pkg/response"
	"visus-api/pkg/validator"
)

type ServiceItemHandler struct {
	serviceUsecase usecase.ServiceItemUsecase
	validator      *validator.CustomValidator
}

func NewServiceItemHandler(serviceUsecase usecase.ServiceItemUsecase, validator *validator.CustomValidator) *ServiceItemHandler {
	return &ServiceItemHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

// GetActiveServices is the public listing; inactive services are hidden.
func (h *ServiceItemHandler) GetActiveServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.serviceUsecase.GetActiveServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *ServiceItemHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.serviceUsecase.GetAllServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *ServiceItemHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.ServiceItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.serviceUsecase.CreateService(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create service")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *ServiceItemHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.ServiceItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.serviceUsecase.UpdateService(r.Context(), serviceID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrServiceNotFound) {
			response.NotFound(w, "Service not found")
			return
		}
		response.InternalServerError(w, "Failed to update service")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *ServiceItemHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.serviceUsecase.DeleteService(r.Context(), serviceID); err != nil {
		if errors.Is(err, usecase.ErrServiceNotFound) {
			response.NotFound(w, "Service not found")
			return
		}
		response.InternalServerError(w, "Failed to delete service")
		return
	}

	response.NoContent(w)
}
