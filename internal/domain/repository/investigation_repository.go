package repository

import (
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"gorm.io/gorm"
)

type InvestigationRepository interface {
	Create(db *gorm.DB, investigation *entity.Investigation) error
	Update(db *gorm.DB, investigation *entity.Investigation) error
	FindByID(db *gorm.DB, id int) (*entity.Investigation, error)
	FindActiveByName(db *gorm.DB, name string) (*entity.Investigation, error)
	FindAllActive(db *gorm.DB) ([]entity.Investigation, error)
	FindActiveBySpecialty(db *gorm.DB, specialtyID int) ([]entity.Investigation, error)
	SaveAll(db *gorm.DB, investigations []entity.Investigation) error
}
