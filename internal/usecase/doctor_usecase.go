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

type DoctorUsecase interface {
	UpsertDoctor(ctx context.Context, req *dto.UpsertDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, name string) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
	}
}

func (u *doctorUsecase) UpsertDoctor(ctx context.Context, req *dto.UpsertDoctorRequest) (*dto.DoctorResponse, error) {
	if req.PriceRate.IsNegative() {
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

	var doctor *entity.Doctor
	if req.ID == nil {
		doctor = &entity.Doctor{State: entity.RecordStateActive}
	} else {
		doctor, err = u.doctorRepo.FindByID(db, *req.ID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %d: %+v", *req.ID, err)
			return nil, err
		}
		if doctor == nil || !doctor.IsActive() {
			return nil, ErrDoctorNotFound
		}
	}

	doctor.Name = req.Name
	doctor.SpecialtyID = specialty.ID
	doctor.Specialty = *specialty
	doctor.PriceRate = req.PriceRate

	if doctor.ID == 0 {
		err = u.doctorRepo.Create(db, doctor)
	} else {
		err = u.doctorRepo.Update(db, doctor)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		if isForeignKeyError(err) {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to save doctor %q: %+v", req.Name, err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// GetDoctor returns the doctor with active working hours and non-cancelled vacations.
func (u *doctorUsecase) GetDoctor(ctx context.Context, name string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindActiveByName(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", name, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}
