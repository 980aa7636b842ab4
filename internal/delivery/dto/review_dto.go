package dto

// Request DTOs

type ReviewRequest struct {
	PatientName *string `json:"patientName" validate:"required"`
	// Rating defaults to 5 when omitted; no range is enforced.
	Rating    *FlexibleInt `json:"rating"`
	TextRu    *string      `json:"textRu"`
	TextKk    *string      `json:"textKk"`
	VideoURL  *string      `json:"videoUrl"`
	PosterURL *string      `json:"posterUrl"`
}

// Response DTOs

type ReviewResponse struct {
	ID          int64   `json:"id"`
	PatientName string  `json:"patientName"`
	Rating      int     `json:"rating"`
	TextRu      *string `json:"textRu"`
	TextKk      *string `json:"textKk"`
	VideoURL    *string `json:"videoUrl"`
	PosterURL   *string `json:"posterUrl"`
}
