package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorName        string `json:"doctor_name" validate:"required,max=255"`
	InvestigationName string `json:"investigation_name" validate:"required,max=255"`
	ClientName        string `json:"client_name" validate:"required,max=255"`
	Date              string `json:"date" validate:"required,date"`        // Format: YYYY-MM-DD
	StartTime         string `json:"start_time" validate:"required,clock"` // Format: HH:MM
}

type CancelAppointmentRequest struct {
	ClientName string `json:"client_name" validate:"required,max=255"`
}

type AppointmentQuery struct {
	Doctor string `validate:"required"`
	Date   string `validate:"required,date"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                uuid.UUID       `json:"id"`
	DoctorID          int             `json:"doctor_id"`
	DoctorName        string          `json:"doctor_name,omitempty"`
	InvestigationID   int             `json:"investigation_id"`
	InvestigationName string          `json:"investigation_name,omitempty"`
	ClientName        string          `json:"client_name"`
	Date              string          `json:"date"`
	StartTime         string          `json:"start_time"`
	EndTime           string          `json:"end_time"`
	Price             decimal.Decimal `json:"price"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
