package dto

import "time"

// Request DTOs

type CreateCallbackRequest struct {
	Name  *string `json:"name" validate:"required"`
	Phone *string `json:"phone" validate:"required"`
}

// Response DTOs

type CallbackRequestResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
