package converter

import (
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		InvestigationID: appointment.InvestigationID,
		ClientName:      appointment.ClientName,
		Date:            appointment.Date.Format(entity.DateLayout),
		StartTime:       appointment.StartTime.String(),
		EndTime:         appointment.EndTime.String(),
		Price:           appointment.Price,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.Name
	}
	if appointment.Investigation != nil {
		response.InvestigationName = appointment.Investigation.Name
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// SlotsToStrings renders slot start times as HH:MM
func SlotsToStrings(slots []entity.TimeOfDay) []string {
	result := make([]string, len(slots))
	for i, slot := range slots {
		result[i] = slot.String()
	}
	return result
}
