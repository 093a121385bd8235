package repository

import (
	"errors"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	domainRepo "github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"

	"gorm.io/gorm"
)

type investigationRepository struct{}

func NewInvestigationRepository() domainRepo.InvestigationRepository {
	return &investigationRepository{}
}

func (r *investigationRepository) Create(db *gorm.DB, investigation *entity.Investigation) error {
	return db.Omit("Specialty").Create(investigation).Error
}

func (r *investigationRepository) Update(db *gorm.DB, investigation *entity.Investigation) error {
	return db.Omit("Specialty").Save(investigation).Error
}

func (r *investigationRepository) FindByID(db *gorm.DB, id int) (*entity.Investigation, error) {
	var investigation entity.Investigation
	err := db.Where("id = ?", id).First(&investigation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &investigation, nil
}

func (r *investigationRepository) FindActiveByName(db *gorm.DB, name string) (*entity.Investigation, error) {
	var investigation entity.Investigation
	err := db.Where("name = ? AND state = ?", name, entity.RecordStateActive).First(&investigation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &investigation, nil
}

func (r *investigationRepository) FindAllActive(db *gorm.DB) ([]entity.Investigation, error) {
	var investigations []entity.Investigation
	err := db.Preload("Specialty").
		Where("state = ?", entity.RecordStateActive).
		Order("name ASC").
		Find(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}

func (r *investigationRepository) FindActiveBySpecialty(db *gorm.DB, specialtyID int) ([]entity.Investigation, error) {
	var investigations []entity.Investigation
	err := db.Where("specialty_id = ? AND state = ?", specialtyID, entity.RecordStateActive).
		Order("id ASC").
		Find(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}

func (r *investigationRepository) SaveAll(db *gorm.DB, investigations []entity.Investigation) error {
	if len(investigations) == 0 {
		return nil
	}
	return db.Omit("Specialty").Save(&investigations).Error
}
