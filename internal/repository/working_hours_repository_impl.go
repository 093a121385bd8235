package repository

import (
	"errors"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	domainRepo "github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"

	"gorm.io/gorm"
)

type workingHoursRepository struct{}

func NewWorkingHoursRepository() domainRepo.WorkingHoursRepository {
	return &workingHoursRepository{}
}

func (r *workingHoursRepository) Create(db *gorm.DB, workingHours *entity.WorkingHours) error {
	return db.Omit("Doctor").Create(workingHours).Error
}

func (r *workingHoursRepository) Update(db *gorm.DB, workingHours *entity.WorkingHours) error {
	return db.Omit("Doctor").Save(workingHours).Error
}

func (r *workingHoursRepository) FindByID(db *gorm.DB, id int) (*entity.WorkingHours, error) {
	var workingHours entity.WorkingHours
	err := db.Where("id = ?", id).First(&workingHours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workingHours, nil
}

func (r *workingHoursRepository) FindActiveByDoctorAndDay(db *gorm.DB, doctorID int, dayOfWeek int) (*entity.WorkingHours, error) {
	var workingHours entity.WorkingHours
	err := db.Where("doctor_id = ? AND day_of_week = ? AND state = ?", doctorID, dayOfWeek, entity.RecordStateActive).
		First(&workingHours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workingHours, nil
}

func (r *workingHoursRepository) FindActiveByDoctor(db *gorm.DB, doctorID int) ([]entity.WorkingHours, error) {
	var rows []entity.WorkingHours
	err := db.Where("doctor_id = ? AND state = ?", doctorID, entity.RecordStateActive).
		Order("day_of_week ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *workingHoursRepository) RemoveAllForDoctor(db *gorm.DB, doctorID int) (int64, error) {
	result := db.Model(&entity.WorkingHours{}).
		Where("doctor_id = ? AND state = ?", doctorID, entity.RecordStateActive).
		Update("state", entity.RecordStateRemoved)
	return result.RowsAffected, result.Error
}
