package dto

type SetClockRequest struct {
	Date string `json:"date" validate:"required,date"` // Format: YYYY-MM-DD
}

type ClockResponse struct {
	OperationalDate string `json:"operational_date"`
	WallClockDate   string `json:"wall_clock_date"`
}
