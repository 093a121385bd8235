package usecase

import (
	"context"

	"github.com/felixcirebea/medicalsys-sub000/internal/converter"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SpecialtyUsecase interface {
	UpsertSpecialty(ctx context.Context, req *dto.UpsertSpecialtyRequest) (*dto.SpecialtyResponse, error)
	GetAllSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
}

func NewSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
) SpecialtyUsecase {
	return &specialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
	}
}

// UpsertSpecialty inserts when no id is given, otherwise renames the existing row.
func (u *specialtyUsecase) UpsertSpecialty(ctx context.Context, req *dto.UpsertSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	db := u.db.WithContext(ctx)

	if req.ID == nil {
		specialty := &entity.Specialty{
			Name:  req.Name,
			State: entity.RecordStateActive,
		}
		if err := u.specialtyRepo.Create(db, specialty); err != nil {
			if isDuplicateKeyError(err) {
				return nil, ErrDuplicateName
			}
			u.log.Warnf("Failed to create specialty: %+v", err)
			return nil, err
		}
		return converter.SpecialtyToResponse(specialty), nil
	}

	specialty, err := u.specialtyRepo.FindByID(db, *req.ID)
	if err != nil {
		u.log.Warnf("Failed to find specialty %d: %+v", *req.ID, err)
		return nil, err
	}
	if specialty == nil || !specialty.IsActive() {
		return nil, ErrSpecialtyNotFound
	}

	specialty.Name = req.Name
	if err := u.specialtyRepo.Update(db, specialty); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		u.log.Warnf("Failed to update specialty %d: %+v", specialty.ID, err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetAllSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.specialtyRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}, nil
}
