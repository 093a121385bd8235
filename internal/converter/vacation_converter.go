package converter

import (
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
)

// VacationToResponse converts a Vacation entity to VacationResponse DTO
func VacationToResponse(vacation *entity.Vacation) *dto.VacationResponse {
	if vacation == nil {
		return nil
	}

	return &dto.VacationResponse{
		ID:        vacation.ID,
		DoctorID:  vacation.DoctorID,
		StartDate: vacation.StartDate.Format(entity.DateLayout),
		EndDate:   vacation.EndDate.Format(entity.DateLayout),
		Type:      string(vacation.Type),
		Status:    string(vacation.Status),
		CreatedAt: vacation.CreatedAt,
		UpdatedAt: vacation.UpdatedAt,
	}
}

// VacationsToResponses converts a slice of Vacation entities to slice of VacationResponse DTOs
func VacationsToResponses(vacations []entity.Vacation) []dto.VacationResponse {
	responses := make([]dto.VacationResponse, len(vacations))
	for i := range vacations {
		responses[i] = *VacationToResponse(&vacations[i])
	}
	return responses
}
