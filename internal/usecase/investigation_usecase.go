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

type InvestigationUsecase interface {
	UpsertInvestigation(ctx context.Context, req *dto.UpsertInvestigationRequest) (*dto.InvestigationResponse, error)
	GetAllInvestigations(ctx context.Context) (*dto.InvestigationListResponse, error)
	DeactivateInvestigation(ctx context.Context, name string) error
}

type investigationUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	investigationRepo repository.InvestigationRepository
	specialtyRepo     repository.SpecialtyRepository
}

func NewInvestigationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	investigationRepo repository.InvestigationRepository,
	specialtyRepo repository.SpecialtyRepository,
) InvestigationUsecase {
	return &investigationUsecase{
		db:                db,
		log:               log,
		investigationRepo: investigationRepo,
		specialtyRepo:     specialtyRepo,
	}
}

func (u *investigationUsecase) UpsertInvestigation(ctx context.Context, req *dto.UpsertInvestigationRequest) (*dto.InvestigationResponse, error) {
	if req.BasePrice.IsNegative() {
		return nil, ErrNegativeAmount
	}

	db := u.db.WithContext(ctx)

	specialty, err := u.specialtyRepo.FindActiveByName(db, req.SpecialtyName)
	if err != nil {
		u.log.Warnf("Failed to find specialty %q: %+v", req.SpecialtyName, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	var investigation *entity.Investigation
	if req.ID == nil {
		investigation = &entity.Investigation{State: entity.RecordStateActive}
	} else {
		investigation, err = u.investigationRepo.FindByID(db, *req.ID)
		if err != nil {
			u.log.Warnf("Failed to find investigation %d: %+v", *req.ID, err)
			return nil, err
		}
		if investigation == nil || !investigation.IsActive() {
			return nil, ErrInvestigationNotFound
		}
	}

	investigation.Name = req.Name
	investigation.SpecialtyID = specialty.ID
	investigation.Specialty = *specialty
	investigation.BasePrice = req.BasePrice.Round(2)
	investigation.DurationMinutes = req.DurationMinutes

	if investigation.ID == 0 {
		err = u.investigationRepo.Create(db, investigation)
	} else {
		err = u.investigationRepo.Update(db, investigation)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		if isForeignKeyError(err) {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to save investigation %q: %+v", req.Name, err)
		return nil, err
	}

	return converter.InvestigationToResponse(investigation), nil
}

func (u *investigationUsecase) GetAllInvestigations(ctx context.Context) (*dto.InvestigationListResponse, error) {
	investigations, err := u.investigationRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find investigations: %+v", err)
		return nil, err
	}

	return &dto.InvestigationListResponse{
		Investigations: converter.InvestigationsToResponses(investigations),
		Total:          len(investigations),
	}, nil
}

// DeactivateInvestigation hides the investigation from availability and booking.
// Existing appointments keep their price and stay valid.
func (u *investigationUsecase) DeactivateInvestigation(ctx context.Context, name string) error {
	db := u.db.WithContext(ctx)

	investigation, err := u.investigationRepo.FindActiveByName(db, name)
	if err != nil {
		u.log.Warnf("Failed to find investigation %q: %+v", name, err)
		return err
	}
	if investigation == nil {
		return ErrInvestigationNotFound
	}

	investigation.Remove()
	if err := u.investigationRepo.Update(db, investigation); err != nil {
		u.log.Warnf("Failed to deactivate investigation %d: %+v", investigation.ID, err)
		return err
	}

	return nil
}
