package repository

import (
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	Update(db *gorm.DB, specialty *entity.Specialty) error
	FindByID(db *gorm.DB, id int) (*entity.Specialty, error)
	FindActiveByName(db *gorm.DB, name string) (*entity.Specialty, error)
	FindAllActive(db *gorm.DB) ([]entity.Specialty, error)
}
