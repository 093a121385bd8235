package repository

import (
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByDoctorAndDate(db *gorm.DB, doctorID int, date time.Time, status entity.AppointmentStatus) ([]entity.Appointment, error)
	ExistsOverlap(db *gorm.DB, doctorID int, date time.Time, start, end entity.TimeOfDay) (bool, error)
	FindByIDAndClientAndStatus(db *gorm.DB, id uuid.UUID, clientName string, status entity.AppointmentStatus) (*entity.Appointment, error)
	CancelAppointment(db *gorm.DB, id uuid.UUID) (int64, error)
	CancelAllForDoctor(db *gorm.DB, doctorID int) (int64, error)
}
