package converter

import (
	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
)

func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	return &dto.ReviewResponse{
		ID:          review.ID,
		PatientName: review.PatientName,
		Rating:      review.Rating,
		TextRu:      review.TextRu,
		TextKk:      review.TextKk,
		VideoURL:    review.VideoURL,
		PosterURL:   review.PosterURL,
	}
}

func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}

// ApplyReviewRequest overwrites every editable field of review from req.
// A missing rating resets to the default rather than keeping the old value.
func ApplyReviewRequest(review *entity.Review, req *dto.ReviewRequest) {
	review.PatientName = StringValue(req.PatientName)
	review.Rating = entity.DefaultReviewRating
	if req.Rating != nil {
		review.Rating = int(*req.Rating)
	}
	review.TextRu = req.TextRu
	review.TextKk = req.TextKk
	review.VideoURL = req.VideoURL
	review.PosterURL = req.PosterURL
}
