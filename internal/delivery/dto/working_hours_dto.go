package dto

// Request DTOs

type UpsertWorkingHoursRequest struct {
	ID         *int   `json:"id" validate:"omitempty,min=1"`
	DoctorName string `json:"doctor_name" validate:"required,max=255"`
	DayOfWeek  int    `json:"day_of_week" validate:"required,weekday"` // 1 = Monday .. 5 = Friday
	StartTime  string `json:"start_time" validate:"required,clock"`    // Format: HH:MM
	EndTime    string `json:"end_time" validate:"required,clock"`      // Format: HH:MM
}

// Response DTOs

type WorkingHoursResponse struct {
	ID        int    `json:"id"`
	DoctorID  int    `json:"doctor_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	State     string `json:"state"`
}

type WorkingHoursListResponse struct {
	WorkingHours []WorkingHoursResponse `json:"working_hours"`
	Total        int                    `json:"total"`
}
