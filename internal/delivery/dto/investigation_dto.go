package dto

import "github.com/shopspring/decimal"

// Request DTOs

type UpsertInvestigationRequest struct {
	ID              *int            `json:"id" validate:"omitempty,min=1"`
	Name            string          `json:"name" validate:"required,max=255"`
	SpecialtyName   string          `json:"specialty_name" validate:"required,max=100"`
	BasePrice       decimal.Decimal `json:"base_price"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,min=1,max=720"`
}

// Response DTOs

type InvestigationResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	SpecialtyID     int             `json:"specialty_id"`
	Specialty       string          `json:"specialty,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	DurationMinutes int             `json:"duration_minutes"`
	State           string          `json:"state"`
}

type InvestigationListResponse struct {
	Investigations []InvestigationResponse `json:"investigations"`
	Total          int                     `json:"total"`
}
