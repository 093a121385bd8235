package entity

import "time"

// Specialty groups doctors and the investigations they perform
type Specialty struct {
	ID        int         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	State     RecordState `gorm:"type:varchar(16);not null;default:'ACTIVE';index" json:"state"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors        []Doctor        `gorm:"foreignKey:SpecialtyID" json:"doctors,omitempty"`
	Investigations []Investigation `gorm:"foreignKey:SpecialtyID" json:"investigations,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}

func (s *Specialty) IsActive() bool {
	return s.State == RecordStateActive
}

func (s *Specialty) Remove() {
	s.State = RecordStateRemoved
}
