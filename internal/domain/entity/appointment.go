package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusNew      AppointmentStatus = "NEW"
	AppointmentStatusCanceled AppointmentStatus = "CANCELED"
)

// Appointment is a booked investigation with a doctor. Price is fixed at
// booking time and never recalculated.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        int               `gorm:"not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	InvestigationID int               `gorm:"not null;index" json:"investigation_id"`
	ClientName      string            `gorm:"type:varchar(255);not null" json:"client_name"`
	Date            time.Time         `gorm:"type:date;not null;index:idx_appointments_doctor_date" json:"date"`
	StartTime       TimeOfDay         `gorm:"type:time;not null" json:"start_time"`
	EndTime         TimeOfDay         `gorm:"type:time;not null" json:"end_time"`
	Price           decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"price"`
	Status          AppointmentStatus `gorm:"type:varchar(16);not null;default:'NEW';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor        *Doctor        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Investigation *Investigation `gorm:"foreignKey:InvestigationID" json:"investigation,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsNew checks if appointment still holds its slot
func (a *Appointment) IsNew() bool {
	return a.Status == AppointmentStatusNew
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCanceled
}

// Cancel changes appointment status to canceled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCanceled
}

// Overlaps reports whether [start, end) intersects the appointment's own interval.
func (a *Appointment) Overlaps(start, end TimeOfDay) bool {
	return start < a.EndTime && a.StartTime < end
}

var hundred = decimal.NewFromInt(100)

// ComputePrice applies the doctor's percentage rate over the base price:
// base + rate/100 * base, rounded to cents.
func ComputePrice(basePrice, priceRate decimal.Decimal) decimal.Decimal {
	return basePrice.Add(priceRate.Div(hundred).Mul(basePrice)).Round(2)
}
