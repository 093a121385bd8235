package dto

// Request DTOs

type UpsertHolidayRequest struct {
	ID          *int   `json:"id" validate:"omitempty,min=1"`
	StartDate   string `json:"start_date" validate:"required,date"` // Format: YYYY-MM-DD
	EndDate     string `json:"end_date" validate:"required,date"`   // Format: YYYY-MM-DD
	Description string `json:"description" validate:"max=500"`
}

// Response DTOs

type HolidayResponse struct {
	ID          int    `json:"id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
	State       string `json:"state"`
}

type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
	Total    int               `json:"total"`
}
