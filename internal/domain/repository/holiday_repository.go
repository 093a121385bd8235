package repository

import (
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"

	"gorm.io/gorm"
)

type HolidayRepository interface {
	Create(db *gorm.DB, holiday *entity.Holiday) error
	Update(db *gorm.DB, holiday *entity.Holiday) error
	FindByID(db *gorm.DB, id int) (*entity.Holiday, error)
	FindAllActive(db *gorm.DB) ([]entity.Holiday, error)
	IsHoliday(db *gorm.DB, date time.Time) (bool, error)
}
