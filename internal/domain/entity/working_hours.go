package entity

import "time"

// WorkingHours is a doctor's weekly window for one ISO weekday (1 = Monday .. 7 = Sunday).
// At most one active row exists per (doctor, day).
type WorkingHours struct {
	ID        int         `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int         `gorm:"not null;index" json:"doctor_id"`
	DayOfWeek int         `gorm:"not null" json:"day_of_week"`
	StartTime TimeOfDay   `gorm:"type:time;not null" json:"start_time"`
	EndTime   TimeOfDay   `gorm:"type:time;not null" json:"end_time"`
	State     RecordState `gorm:"type:varchar(16);not null;default:'ACTIVE';index" json:"state"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (WorkingHours) TableName() string {
	return "working_hours"
}

func (w *WorkingHours) IsActive() bool {
	return w.State == RecordStateActive
}

func (w *WorkingHours) Remove() {
	w.State = RecordStateRemoved
}
