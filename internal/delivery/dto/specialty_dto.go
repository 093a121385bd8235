package dto

// Request DTOs

type UpsertSpecialtyRequest struct {
	ID   *int   `json:"id" validate:"omitempty,min=1"`
	Name string `json:"name" validate:"required,max=100"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}

// DeactivationResponse summarises what a cascading removal touched
type DeactivationResponse struct {
	Doctors        int   `json:"doctors"`
	Investigations int   `json:"investigations"`
	Vacations      int64 `json:"vacations_canceled"`
	Appointments   int64 `json:"appointments_canceled"`
	WorkingHours   int64 `json:"working_hours_removed"`
}
