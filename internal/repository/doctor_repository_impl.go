package repository

import (
	"errors"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	domainRepo "github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Specialty", "WorkingHours", "Vacations").Create(doctor).Error
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Specialty", "WorkingHours", "Vacations").Save(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Specialty").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindActiveByName(db *gorm.DB, name string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.
		Preload("Specialty").
		Preload("WorkingHours", "state = ?", entity.RecordStateActive).
		Preload("Vacations", "status <> ?", entity.VacationStatusCanceled).
		Where("name = ? AND state = ?", name, entity.RecordStateActive).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAllActive(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Specialty").
		Where("state = ?", entity.RecordStateActive).
		Order("name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindActiveBySpecialty(db *gorm.DB, specialtyID int) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("specialty_id = ? AND state = ?", specialtyID, entity.RecordStateActive).
		Order("id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) SaveAll(db *gorm.DB, doctors []entity.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	return db.Omit("Specialty", "WorkingHours", "Vacations").Save(&doctors).Error
}
