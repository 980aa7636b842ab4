package handler

import (
	"errors"
	"net/http"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/usecase"
	"visus-api/pkg/response"
	"visus-api/pkg/validator"

	"github.com/gorilla/mux"
)

type MediaAssetHandler struct {
	mediaUsecase usecase.MediaAssetUsecase
	validator    *validator.CustomValidator
}

func NewMediaAssetHandler(mediaUsecase usecase.MediaAssetUsecase, validator *validator.CustomValidator) *MediaAssetHandler {
	return &MediaAssetHandler{
		mediaUsecase: mediaUsecase,
		validator:    validator,
	}
}

func (h *MediaAssetHandler) GetMediaAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.mediaUsecase.GetMediaAssets(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		h.writeError(w, err, "Failed to get media assets")
		return
	}

	response.JSON(w, http.StatusOK, assets)
}

func (h *MediaAssetHandler) CreateMediaAsset(w http.ResponseWriter, r *http.Request) {
	var req dto.MediaAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	asset, err := h.mediaUsecase.CreateMediaAsset(r.Context(), mux.Vars(r)["category"], &req)
	if err != nil {
		h.writeError(w, err, "Failed to create media asset")
		return
	}

	response.JSON(w, http.StatusOK, asset)
}

func (h *MediaAssetHandler) UpdateMediaAsset(w http.ResponseWriter, r *http.Request) {
	assetID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.MediaAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	asset, err := h.mediaUsecase.UpdateMediaAsset(r.Context(), mux.Vars(r)["category"], assetID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update media asset")
		return
	}

	response.JSON(w, http.StatusOK, asset)
}

func (h *MediaAssetHandler) DeleteMediaAsset(w http.ResponseWriter, r *http.Request) {
	assetID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.mediaUsecase.DeleteMediaAsset(r.Context(), mux.Vars(r)["category"], assetID); err != nil {
		h.writeError(w, err, "Failed to delete media asset")
		return
	}

	response.NoContent(w)
}

func (h *MediaAssetHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrUnknownMediaCategory):
		response.BadRequest(w, "Unknown category")
	case errors.Is(err, usecase.ErrMediaAssetNotFound):
		response.NotFound(w, "Media asset not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
