package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investigation is a bookable medical procedure type
type Investigation struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	SpecialtyID     int             `gorm:"not null;index" json:"specialty_id"`
	BasePrice       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
	State           RecordState     `gorm:"type:varchar(16);not null;default:'ACTIVE';index" json:"state"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Investigation) TableName() string {
	return "investigations"
}

func (i *Investigation) IsActive() bool {
	return i.State == RecordStateActive
}

func (i *Investigation) Remove() {
	i.State = RecordStateRemoved
}

func (i *Investigation) Duration() time.Duration {
	return time.Duration(i.DurationMinutes) * time.Minute
}
