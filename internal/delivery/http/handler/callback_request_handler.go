package handler

import (
	"net/http"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/usecase"
	"visus-api/pkg/response"
	"visus-api/pkg/validator"
)

type CallbackRequestHandler struct {
	callbackUsecase usecase.CallbackRequestUsecase
	validator       *validator.CustomValidator
}

func NewCallbackRequestHandler(callbackUsecase usecase.CallbackRequestUsecase, validator *validator.CustomValidator) *CallbackRequestHandler {
	return &CallbackRequestHandler{
		callbackUsecase: callbackUsecase,
		validator:       validator,
	}
}

func (h *CallbackRequestHandler) CreateCallbackRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCallbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.callbackUsecase.CreateCallbackRequest(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create callback request")
		return
	}

	response.JSON(w, http.StatusCreated, request)
}

func (h *CallbackRequestHandler) GetAllCallbackRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.callbackUsecase.GetAllCallbackRequests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get callback requests")
		return
	}

	response.JSON(w, http.StatusOK, requests)
}
