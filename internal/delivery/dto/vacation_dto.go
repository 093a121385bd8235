package dto

import "time"

// Request DTOs

type CreateVacationRequest struct {
	DoctorName string `json:"doctor_name" validate:"required,max=255"`
	StartDate  string `json:"start_date" validate:"required,date"` // Format: YYYY-MM-DD
	EndDate    string `json:"end_date" validate:"required,date"`   // Format: YYYY-MM-DD
	Type       string `json:"type" validate:"required,oneof=VACATION SICK_LEAVE OTHER"`
}

type CancelVacationRequest struct {
	DoctorName string `json:"doctor_name" validate:"required,max=255"`
	StartDate  string `json:"start_date" validate:"required,date"`
}

// Response DTOs

type VacationResponse struct {
	ID        int       `json:"id"`
	DoctorID  int       `json:"doctor_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VacationListResponse struct {
	Vacations []VacationResponse `json:"vacations"`
	Total     int                `json:"total"`
}
