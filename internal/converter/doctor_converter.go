package converter

import (
	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Role:            doctor.Role,
		ExperienceYears: doctor.ExperienceYears,
		DescriptionRu:   doctor.DescriptionRu,
		DescriptionKk:   doctor.DescriptionKk,
		PhotoURL:        doctor.PhotoURL,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// ApplyDoctorRequest overwrites every editable field of doctor from req.
// Fields absent from req are cleared, not kept.
func ApplyDoctorRequest(doctor *entity.Doctor, req *dto.DoctorRequest) {
	doctor.Name = StringValue(req.Name)
	doctor.Role = StringValue(req.Role)
	doctor.ExperienceYears = req.ExperienceYears.IntPtr()
	doctor.DescriptionRu = req.DescriptionRu
	doctor.DescriptionKk = req.DescriptionKk
	doctor.PhotoURL = req.PhotoURL
}
