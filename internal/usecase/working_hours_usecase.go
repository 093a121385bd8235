package usecase

import (
	"context"

	"github.com/felixcirebea/medicalsys-sub000/internal/converter"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"
	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWorkingHoursRowNotFound = apperror.NotFound("working hours not found")
	ErrDayAlreadyScheduled     = apperror.Concurrency("working hours already defined for this day")
)

type WorkingHoursUsecase interface {
	UpsertWorkingHours(ctx context.Context, req *dto.UpsertWorkingHoursRequest) (*dto.WorkingHoursResponse, error)
	GetWorkingHours(ctx context.Context, doctorName string) (*dto.WorkingHoursListResponse, error)
	RemoveWorkingHours(ctx context.Context, id int) error
}

type workingHoursUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	workingHoursRepo repository.WorkingHoursRepository
	doctorRepo       repository.DoctorRepository
}

func NewWorkingHoursUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workingHoursRepo repository.WorkingHoursRepository,
	doctorRepo repository.DoctorRepository,
) WorkingHoursUsecase {
	return &workingHoursUsecase{
		db:               db,
		log:              log,
		workingHoursRepo: workingHoursRepo,
		doctorRepo:       doctorRepo,
	}
}

// UpsertWorkingHours keeps at most one active row per doctor and weekday.
func (u *workingHoursUsecase) UpsertWorkingHours(ctx context.Context, req *dto.UpsertWorkingHoursRequest) (*dto.WorkingHoursResponse, error) {
	start, err := entity.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	end, err := entity.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindActiveByName(db, req.DoctorName)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", req.DoctorName, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	existing, err := u.workingHoursRepo.FindActiveByDoctorAndDay(db, doctor.ID, req.DayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to find working hours: %+v", err)
		return nil, err
	}

	var workingHours *entity.WorkingHours
	if req.ID == nil {
		if existing != nil {
			return nil, ErrDayAlreadyScheduled
		}
		workingHours = &entity.WorkingHours{State: entity.RecordStateActive}
	} else {
		workingHours, err = u.workingHoursRepo.FindByID(db, *req.ID)
		if err != nil {
			u.log.Warnf("Failed to find working hours %d: %+v", *req.ID, err)
			return nil, err
		}
		if workingHours == nil || !workingHours.IsActive() {
			return nil, ErrWorkingHoursRowNotFound
		}
		if existing != nil && existing.ID != workingHours.ID {
			return nil, ErrDayAlreadyScheduled
		}
	}

	workingHours.DoctorID = doctor.ID
	workingHours.DayOfWeek = req.DayOfWeek
	workingHours.StartTime = start
	workingHours.EndTime = end

	if workingHours.ID == 0 {
		err = u.workingHoursRepo.Create(db, workingHours)
	} else {
		err = u.workingHoursRepo.Update(db, workingHours)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDayAlreadyScheduled
		}
		if isForeignKeyError(err) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to save working hours: %+v", err)
		return nil, err
	}

	return converter.WorkingHoursToResponse(workingHours), nil
}

func (u *workingHoursUsecase) GetWorkingHours(ctx context.Context, doctorName string) (*dto.WorkingHoursListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindActiveByName(db, doctorName)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", doctorName, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	rows, err := u.workingHoursRepo.FindActiveByDoctor(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find working hours for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.WorkingHoursListResponse{
		WorkingHours: converter.WorkingHoursListToResponses(rows),
		Total:        len(rows),
	}, nil
}

func (u *workingHoursUsecase) RemoveWorkingHours(ctx context.Context, id int) error {
	db := u.db.WithContext(ctx)

	workingHours, err := u.workingHoursRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find working hours %d: %+v", id, err)
		return err
	}
	if workingHours == nil || !workingHours.IsActive() {
		return ErrWorkingHoursRowNotFound
	}

	workingHours.Remove()
	if err := u.workingHoursRepo.Update(db, workingHours); err != nil {
		u.log.Warnf("Failed to remove working hours %d: %+v", id, err)
		return err
	}

	return nil
}
