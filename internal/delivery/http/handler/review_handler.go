package handler

import (
	"errors"
	"net/http"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/usecase"
	"visus-api/pkg/response"
	"visus-api/pkg/validator"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

func (h *ReviewHandler) GetAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUsecase.GetAllReviews(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews")
		return
	}

	response.JSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req dto.ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create review")
		return
	}

	response.JSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.UpdateReview(r.Context(), reviewID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrReviewNotFound) {
			response.NotFound(w, "Review not found")
			return
		}
		response.InternalServerError(w, "Failed to update review")
		return
	}

	response.JSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.reviewUsecase.DeleteReview(r.Context(), reviewID); err != nil {
		if errors.Is(err, usecase.ErrReviewNotFound) {
			response.NotFound(w, "Review not found")
			return
		}
		response.InternalServerError(w, "Failed to delete review")
		return
	}

	response.NoContent(w)
}
