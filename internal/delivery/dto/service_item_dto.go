package dto

// Request DTOs

type ServiceItemRequest struct {
	Slug               *string `json:"slug" validate:"required"`
	TitleRu            *string `json:"titleRu" validate:"required"`
	TitleKk            *string `json:"titleKk" validate:"required"`
	ShortDescriptionRu *string `json:"shortDescriptionRu"`
	ShortDescriptionKk *string `json:"shortDescriptionKk"`
	FullDescriptionRu  *string `json:"fullDescriptionRu"`
	FullDescriptionKk  *string `json:"fullDescriptionKk"`
	IsActive           *bool   `json:"isActive" validate:"required"`
}

// Response DTOs

type ServiceItemResponse struct {
	ID                 int64   `json:"id"`
	Slug               string  `json:"slug"`
	TitleRu            string  `json:"titleRu"`
	TitleKk            string  `json:"titleKk"`
	ShortDescriptionRu *string `json:"shortDescriptionRu"`
	ShortDescriptionKk *string `json:"shortDescriptionKk"`
	FullDescriptionRu  *string `json:"fullDescriptionRu"`
	FullDescriptionKk  *string `json:"fullDescriptionKk"`
	IsActive           bool    `json:"isActive"`
}
