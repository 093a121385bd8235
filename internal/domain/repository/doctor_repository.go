package repository

import (
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	Update(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	// FindActiveByName preloads the doctor's active working hours and non-cancelled vacations.
	FindActiveByName(db *gorm.DB, name string) (*entity.Doctor, error)
	FindAllActive(db *gorm.DB) ([]entity.Doctor, error)
	FindActiveBySpecialty(db *gorm.DB, specialtyID int) ([]entity.Doctor, error)
	SaveAll(db *gorm.DB, doctors []entity.Doctor) error
}
