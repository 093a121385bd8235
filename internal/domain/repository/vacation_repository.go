package repository

import (
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"gorm.io/gorm"
)

type VacationRepository interface {
	Create(db *gorm.DB, vacation *entity.Vacation) error
	Update(db *gorm.DB, vacation *entity.Vacation) error
	// ExistsOverlap checks non-cancelled vacations intersecting [start, end].
	// A nil doctorID checks every doctor.
	ExistsOverlap(db *gorm.DB, doctorID *int, start, end time.Time) (bool, error)
	FindActiveByDoctorAndStartDate(db *gorm.DB, doctorID int, start time.Time) (*entity.Vacation, error)
	FindByDoctor(db *gorm.DB, doctorID int) ([]entity.Vacation, error)
	// CancelOpenForDoctor cancels PLANNED and IN_PROGRESS vacations; DONE ones are left untouched.
	CancelOpenForDoctor(db *gorm.DB, doctorID int) (int64, error)
	FinishDue(db *gorm.DB, today time.Time) (int64, error)
	StartDue(db *gorm.DB, today time.Time) (int64, error)
}
