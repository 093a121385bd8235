package entity

import (
	"errors"
	"time"
)

// VacationType represents why a doctor is away
type VacationType string

const (
	VacationTypeVacation  VacationType = "VACATION"
	VacationTypeSickLeave VacationType = "SICK_LEAVE"
	VacationTypeOther     VacationType = "OTHER"
)

func (t VacationType) Valid() bool {
	switch t {
	case VacationTypeVacation, VacationTypeSickLeave, VacationTypeOther:
		return true
	}
	return false
}

// VacationStatus moves PLANNED -> IN_PROGRESS -> DONE, or to CANCELED from
// either non-terminal state.
type VacationStatus string

const (
	VacationStatusPlanned    VacationStatus = "PLANNED"
	VacationStatusInProgress VacationStatus = "IN_PROGRESS"
	VacationStatusDone       VacationStatus = "DONE"
	VacationStatusCanceled   VacationStatus = "CANCELED"
)

var ErrInvalidVacationTransition = errors.New("invalid vacation status transition")

// Vacation represents a doctor's absence over [StartDate, EndDate] inclusive
type Vacation struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int            `gorm:"not null;index" json:"doctor_id"`
	StartDate time.Time      `gorm:"type:date;not null;index" json:"start_date"`
	EndDate   time.Time      `gorm:"type:date;not null;index" json:"end_date"`
	Type      VacationType   `gorm:"type:varchar(16);not null" json:"type"`
	Status    VacationStatus `gorm:"type:varchar(16);not null;default:'PLANNED';index" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Vacation) TableName() string {
	return "vacations"
}

func (v *Vacation) IsCancelled() bool {
	return v.Status == VacationStatusCanceled
}

func (v *Vacation) IsDone() bool {
	return v.Status == VacationStatusDone
}

// IsTerminal reports whether no further transition is allowed
func (v *Vacation) IsTerminal() bool {
	return v.IsDone() || v.IsCancelled()
}

func (v *Vacation) Covers(date time.Time) bool {
	return DateRangeContains(v.StartDate, v.EndDate, date)
}

// Start moves a planned vacation to in progress
func (v *Vacation) Start() error {
	if v.Status != VacationStatusPlanned {
		return ErrInvalidVacationTransition
	}
	v.Status = VacationStatusInProgress
	return nil
}

// Finish marks a planned or running vacation as done
func (v *Vacation) Finish() error {
	if v.IsTerminal() {
		return ErrInvalidVacationTransition
	}
	v.Status = VacationStatusDone
	return nil
}

// Cancel changes vacation status to canceled
func (v *Vacation) Cancel() error {
	if v.IsTerminal() {
		return ErrInvalidVacationTransition
	}
	v.Status = VacationStatusCanceled
	return nil
}
