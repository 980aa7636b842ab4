package dto

// Request DTOs

// DoctorRequest string fields marked required must be present; "" is accepted.
type DoctorRequest struct {
	Name            *string      `json:"name" validate:"required"`
	Role            *string      `json:"role" validate:"required"`
	ExperienceYears *FlexibleInt `json:"experienceYears"`
	DescriptionRu   *string      `json:"descriptionRu"`
	DescriptionKk   *string      `json:"descriptionKk"`
	PhotoURL        *string      `json:"photoUrl"`
}

// Response DTOs

type DoctorResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	ExperienceYears *int    `json:"experienceYears"`
	DescriptionRu   *string `json:"descriptionRu"`
	DescriptionKk   *string `json:"descriptionKk"`
	PhotoURL        *string `json:"photoUrl"`
}
