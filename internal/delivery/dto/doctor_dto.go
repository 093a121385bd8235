package dto

import "github.com/shopspring/decimal"

// Request DTOs

type UpsertDoctorRequest struct {
	ID            *int            `json:"id" validate:"omitempty,min=1"`
	Name          string          `json:"name" validate:"required,max=255"`
	SpecialtyName string          `json:"specialty_name" validate:"required,max=100"`
	PriceRate     decimal.Decimal `json:"price_rate"` // percent over the investigation base price
}

// Response DTOs

type DoctorResponse struct {
	ID           int                    `json:"id"`
	Name         string                 `json:"name"`
	SpecialtyID  int                    `json:"specialty_id"`
	Specialty    string                 `json:"specialty,omitempty"`
	PriceRate    decimal.Decimal        `json:"price_rate"`
	State        string                 `json:"state"`
	WorkingHours []WorkingHoursResponse `json:"working_hours,omitempty"`
	Vacations    []VacationResponse     `json:"vacations,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
