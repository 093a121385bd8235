package repository

import (
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"gorm.io/gorm"
)

type WorkingHoursRepository interface {
	Create(db *gorm.DB, workingHours *entity.WorkingHours) error
	Update(db *gorm.DB, workingHours *entity.WorkingHours) error
	FindByID(db *gorm.DB, id int) (*entity.WorkingHours, error)
	FindActiveByDoctorAndDay(db *gorm.DB, doctorID int, dayOfWeek int) (*entity.WorkingHours, error)
	FindActiveByDoctor(db *gorm.DB, doctorID int) ([]entity.WorkingHours, error)
	// RemoveAllForDoctor marks every active row of the doctor as removed and returns the affected count.
	RemoveAllForDoctor(db *gorm.DB, doctorID int) (int64, error)
}
