package repository

import (
	"errors"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	domainRepo "github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"

	"gorm.io/gorm"
)

type vacationRepository struct{}

func NewVacationRepository() domainRepo.VacationRepository {
	return &vacationRepository{}
}

func (r *vacationRepository) Create(db *gorm.DB, vacation *entity.Vacation) error {
	return db.Omit("Doctor").Create(vacation).Error
}

func (r *vacationRepository) Update(db *gorm.DB, vacation *entity.Vacation) error {
	return db.Omit("Doctor").Save(vacation).Error
}

func (r *vacationRepository) ExistsOverlap(db *gorm.DB, doctorID *int, start, end time.Time) (bool, error) {
	query := db.Model(&entity.Vacation{}).
		Where("status <> ? AND start_date <= ? AND end_date >= ?",
			entity.VacationStatusCanceled, end.Format(entity.DateLayout), start.Format(entity.DateLayout))
	if doctorID != nil {
		query = query.Where("doctor_id = ?", *doctorID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *vacationRepository) FindActiveByDoctorAndStartDate(db *gorm.DB, doctorID int, start time.Time) (*entity.Vacation, error) {
	var vacation entity.Vacation
	err := db.Where("doctor_id = ? AND start_date = ? AND status <> ?", doctorID, start.Format(entity.DateLayout), entity.VacationStatusCanceled).
		First(&vacation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vacation, nil
}

func (r *vacationRepository) FindByDoctor(db *gorm.DB, doctorID int) ([]entity.Vacation, error) {
	var vacations []entity.Vacation
	err := db.Where("doctor_id = ?", doctorID).Order("start_date ASC").Find(&vacations).Error
	if err != nil {
		return nil, err
	}
	return vacations, nil
}

func (r *vacationRepository) CancelOpenForDoctor(db *gorm.DB, doctorID int) (int64, error) {
	result := db.Model(&entity.Vacation{}).
		Where("doctor_id = ? AND status IN ?", doctorID, []entity.VacationStatus{entity.VacationStatusPlanned, entity.VacationStatusInProgress}).
		Update("status", entity.VacationStatusCanceled)
	return result.RowsAffected, result.Error
}

// FinishDue closes every open vacation whose last day is before today.
func (r *vacationRepository) FinishDue(db *gorm.DB, today time.Time) (int64, error) {
	result := db.Model(&entity.Vacation{}).
		Where("status IN ? AND end_date < ?", []entity.VacationStatus{entity.VacationStatusPlanned, entity.VacationStatusInProgress}, today.Format(entity.DateLayout)).
		Update("status", entity.VacationStatusDone)
	return result.RowsAffected, result.Error
}

// StartDue moves planned vacations that have begun to in progress.
func (r *vacationRepository) StartDue(db *gorm.DB, today time.Time) (int64, error) {
	result := db.Model(&entity.Vacation{}).
		Where("status = ? AND start_date <= ?", entity.VacationStatusPlanned, today.Format(entity.DateLayout)).
		Update("status", entity.VacationStatusInProgress)
	return result.RowsAffected, result.Error
}
