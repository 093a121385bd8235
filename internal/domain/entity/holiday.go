package entity

import "time"

// Holiday closes the whole clinic for [StartDate, EndDate] inclusive
type Holiday struct {
	ID          int         `gorm:"primaryKey;autoIncrement" json:"id"`
	StartDate   time.Time   `gorm:"type:date;not null;index" json:"start_date"`
	EndDate     time.Time   `gorm:"type:date;not null;index" json:"end_date"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	State       RecordState `gorm:"type:varchar(16);not null;default:'ACTIVE';index" json:"state"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}

func (h *Holiday) IsActive() bool {
	return h.State == RecordStateActive
}

func (h *Holiday) Remove() {
	h.State = RecordStateRemoved
}

func (h *Holiday) Covers(date time.Time) bool {
	return h.IsActive() && DateRangeContains(h.StartDate, h.EndDate, date)
}
