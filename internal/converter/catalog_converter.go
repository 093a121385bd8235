package converter

import (
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
)

// SpecialtyToResponse converts a Specialty entity to SpecialtyResponse DTO
func SpecialtyToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil {
		return nil
	}

	return &dto.SpecialtyResponse{
		ID:    specialty.ID,
		Name:  specialty.Name,
		State: string(specialty.State),
	}
}

// SpecialtiesToResponses converts a slice of Specialty entities to slice of SpecialtyResponse DTOs
func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		responses[i] = *SpecialtyToResponse(&specialties[i])
	}
	return responses
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:          doctor.ID,
		Name:        doctor.Name,
		SpecialtyID: doctor.SpecialtyID,
		Specialty:   doctor.Specialty.Name,
		PriceRate:   doctor.PriceRate,
		State:       string(doctor.State),
	}

	if len(doctor.WorkingHours) > 0 {
		response.WorkingHours = WorkingHoursListToResponses(doctor.WorkingHours)
	}
	if len(doctor.Vacations) > 0 {
		response.Vacations = VacationsToResponses(doctor.Vacations)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// InvestigationToResponse converts an Investigation entity to InvestigationResponse DTO
func InvestigationToResponse(investigation *entity.Investigation) *dto.InvestigationResponse {
	if investigation == nil {
		return nil
	}

	return &dto.InvestigationResponse{
		ID:              investigation.ID,
		Name:            investigation.Name,
		SpecialtyID:     investigation.SpecialtyID,
		Specialty:       investigation.Specialty.Name,
		BasePrice:       investigation.BasePrice,
		DurationMinutes: investigation.DurationMinutes,
		State:           string(investigation.State),
	}
}

// InvestigationsToResponses converts a slice of Investigation entities to slice of InvestigationResponse DTOs
func InvestigationsToResponses(investigations []entity.Investigation) []dto.InvestigationResponse {
	responses := make([]dto.InvestigationResponse, len(investigations))
	for i := range investigations {
		responses[i] = *InvestigationToResponse(&investigations[i])
	}
	return responses
}

// WorkingHoursToResponse converts a WorkingHours entity to WorkingHoursResponse DTO
func WorkingHoursToResponse(workingHours *entity.WorkingHours) *dto.WorkingHoursResponse {
	if workingHours == nil {
		return nil
	}

	return &dto.WorkingHoursResponse{
		ID:        workingHours.ID,
		DoctorID:  workingHours.DoctorID,
		DayOfWeek: workingHours.DayOfWeek,
		StartTime: workingHours.StartTime.String(),
		EndTime:   workingHours.EndTime.String(),
		State:     string(workingHours.State),
	}
}

// WorkingHoursListToResponses converts a slice of WorkingHours entities to slice of WorkingHoursResponse DTOs
func WorkingHoursListToResponses(rows []entity.WorkingHours) []dto.WorkingHoursResponse {
	responses := make([]dto.WorkingHoursResponse, len(rows))
	for i := range rows {
		responses[i] = *WorkingHoursToResponse(&rows[i])
	}
	return responses
}

// HolidayToResponse converts a Holiday entity to HolidayResponse DTO
func HolidayToResponse(holiday *entity.Holiday) *dto.HolidayResponse {
	if holiday == nil {
		return nil
	}

	return &dto.HolidayResponse{
		ID:          holiday.ID,
		StartDate:   holiday.StartDate.Format(entity.DateLayout),
		EndDate:     holiday.EndDate.Format(entity.DateLayout),
		Description: holiday.Description,
		State:       string(holiday.State),
	}
}

// HolidaysToResponses converts a slice of Holiday entities to slice of HolidayResponse DTOs
func HolidaysToResponses(holidays []entity.Holiday) []dto.HolidayResponse {
	responses := make([]dto.HolidayResponse, len(holidays))
	for i := range holidays {
		responses[i] = *HolidayToResponse(&holidays[i])
	}
	return responses
}
