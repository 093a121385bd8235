package dto

// Request DTOs

type AvailabilityQuery struct {
	Doctor        string `validate:"required"`
	Investigation string `validate:"required"`
	Date          string `validate:"required,date"` // Format: YYYY-MM-DD
}

// Response DTOs

type AvailabilityResponse struct {
	Doctor        string   `json:"doctor"`
	Investigation string   `json:"investigation"`
	Date          string   `json:"date"`
	Slots         []string `json:"slots"`
}
