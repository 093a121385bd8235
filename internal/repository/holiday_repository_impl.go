package repository

import (
	"errors"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	domainRepo "github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"

	"gorm.io/gorm"
)

type holidayRepository struct{}

func NewHolidayRepository() domainRepo.HolidayRepository {
	return &holidayRepository{}
}

func (r *holidayRepository) Create(db *gorm.DB, holiday *entity.Holiday) error {
	return db.Create(holiday).Error
}

func (r *holidayRepository) Update(db *gorm.DB, holiday *entity.Holiday) error {
	return db.Save(holiday).Error
}

func (r *holidayRepository) FindByID(db *gorm.DB, id int) (*entity.Holiday, error) {
	var holiday entity.Holiday
	err := db.Where("id = ?", id).First(&holiday).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &holiday, nil
}

func (r *holidayRepository) FindAllActive(db *gorm.DB) ([]entity.Holiday, error) {
	var holidays []entity.Holiday
	err := db.Where("state = ?", entity.RecordStateActive).Order("start_date ASC").Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *holidayRepository) IsHoliday(db *gorm.DB, date time.Time) (bool, error) {
	day := date.Format(entity.DateLayout)
	var count int64
	err := db.Model(&entity.Holiday{}).
		Where("state = ? AND start_date <= ? AND end_date >= ?", entity.RecordStateActive, day, day).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
