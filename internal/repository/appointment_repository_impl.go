package repository

import (
	"errors"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	domainRepo "github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Investigation").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Preload("Investigation").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorAndDate(db *gorm.DB, doctorID int, date time.Time, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND date = ? AND status = ?", doctorID, date.Format(entity.DateLayout), status).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ExistsOverlap checks NEW appointments whose [start_time, end_time) intersects [start, end).
func (r *appointmentRepository) ExistsOverlap(db *gorm.DB, doctorID int, date time.Time, start, end entity.TimeOfDay) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date = ? AND status = ?", doctorID, date.Format(entity.DateLayout), entity.AppointmentStatusNew).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) FindByIDAndClientAndStatus(db *gorm.DB, id uuid.UUID, clientName string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ? AND client_name = ? AND status = ?", id, clientName, status).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// CancelAppointment atomically cancels an appointment ONLY if it's still NEW.
// Returns affected rows: 1 = success, 0 = already cancelled.
func (r *appointmentRepository) CancelAppointment(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusNew).
		Update("status", entity.AppointmentStatusCanceled)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CancelAllForDoctor(db *gorm.DB, doctorID int) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND status = ?", doctorID, entity.AppointmentStatusNew).
		Update("status", entity.AppointmentStatusCanceled)
	return result.RowsAffected, result.Error
}
