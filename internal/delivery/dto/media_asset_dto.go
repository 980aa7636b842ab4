package dto

// Request DTOs

type MediaAssetRequest struct {
	// Category is accepted for compatibility but the path segment always wins.
	Category    *string `json:"category"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PhotoURL    *string `json:"photoUrl" validate:"required"`
}

// Response DTOs

type MediaAssetResponse struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PhotoURL    string  `json:"photoUrl"`
}
