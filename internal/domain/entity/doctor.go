package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor owns its working hours, vacations and appointments; removing a
// doctor cascades into all three.
type Doctor struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	SpecialtyID int             `gorm:"not null;index" json:"specialty_id"`
	PriceRate   decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0" json:"price_rate"` // percent added over the investigation base price
	State       RecordState     `gorm:"type:varchar(16);not null;default:'ACTIVE';index" json:"state"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialty    Specialty      `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	WorkingHours []WorkingHours `gorm:"foreignKey:DoctorID" json:"working_hours,omitempty"`
	Vacations    []Vacation     `gorm:"foreignKey:DoctorID" json:"vacations,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) IsActive() bool {
	return d.State == RecordStateActive
}

func (d *Doctor) Remove() {
	d.State = RecordStateRemoved
}

// WorkingHoursFor returns the active working hours row for an ISO weekday, if loaded.
func (d *Doctor) WorkingHoursFor(isoWeekday int) *WorkingHours {
	for i := range d.WorkingHours {
		wh := &d.WorkingHours[i]
		if wh.DayOfWeek == isoWeekday && wh.IsActive() {
			return wh
		}
	}
	return nil
}

// IsOnVacation reports whether any non-cancelled vacation covers date.
func (d *Doctor) IsOnVacation(date time.Time) bool {
	for i := range d.Vacations {
		v := &d.Vacations[i]
		if !v.IsCancelled() && v.Covers(date) {
			return true
		}
	}
	return false
}
