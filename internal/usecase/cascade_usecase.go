package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"
	"github.com/felixcirebea/medicalsys-sub000/internal/service"
	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSpecialtyNotFound = apperror.NotFound("specialty not found")

// CascadeUsecase removes doctors and specialties together with everything
// that depends on them. Each call is a single transaction and holds the
// booking lock of every affected doctor until it commits.
type CascadeUsecase interface {
	DeactivateDoctor(ctx context.Context, name string) (*dto.DeactivationResponse, error)
	DeactivateSpecialty(ctx context.Context, name string) (*dto.DeactivationResponse, error)
}

type cascadeUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	locker             DoctorLocker
	specialtyRepo      repository.SpecialtyRepository
	doctorRepo         repository.DoctorRepository
	investigationRepo  repository.InvestigationRepository
	vacationRepo       repository.VacationRepository
	workingHoursRepo   repository.WorkingHoursRepository
	appointmentUsecase AppointmentUsecase
	auditService       service.AuditService
}

func NewCascadeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	locker DoctorLocker,
	specialtyRepo repository.SpecialtyRepository,
	doctorRepo repository.DoctorRepository,
	investigationRepo repository.InvestigationRepository,
	vacationRepo repository.VacationRepository,
	workingHoursRepo repository.WorkingHoursRepository,
	appointmentUsecase AppointmentUsecase,
	auditService service.AuditService,
) CascadeUsecase {
	return &cascadeUsecase{
		db:                 db,
		log:                log,
		locker:             locker,
		specialtyRepo:      specialtyRepo,
		doctorRepo:         doctorRepo,
		investigationRepo:  investigationRepo,
		vacationRepo:       vacationRepo,
		workingHoursRepo:   workingHoursRepo,
		appointmentUsecase: appointmentUsecase,
		auditService:       auditService,
	}
}

func (u *cascadeUsecase) DeactivateDoctor(ctx context.Context, name string) (*dto.DeactivationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	release := func() {}
	defer func() {
		tx.Rollback()
		release()
	}()

	doctor, err := u.doctorRepo.FindActiveByName(tx, name)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", name, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	unlock, err := u.lockDoctors(ctx, []entity.Doctor{*doctor})
	if err != nil {
		return nil, err
	}
	release = unlock

	result := &dto.DeactivationResponse{}
	if err := u.retireDoctors(tx, []entity.Doctor{*doctor}, result); err != nil {
		return nil, err
	}

	if err := u.auditService.LogCascade(tx, entity.AuditActionDoctorDeactivate, "doctor", strconv.Itoa(doctor.ID), cascadeEffects(result)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit doctor deactivation: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor deactivated: id=%d, vacations=%d, appointments=%d, working_hours=%d",
		doctor.ID, result.Vacations, result.Appointments, result.WorkingHours)
	return result, nil
}

func (u *cascadeUsecase) DeactivateSpecialty(ctx context.Context, name string) (*dto.DeactivationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	release := func() {}
	defer func() {
		tx.Rollback()
		release()
	}()

	specialty, err := u.specialtyRepo.FindActiveByName(tx, name)
	if err != nil {
		u.log.Warnf("Failed to find specialty %q: %+v", name, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	doctors, err := u.doctorRepo.FindActiveBySpecialty(tx, specialty.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctors of specialty %d: %+v", specialty.ID, err)
		return nil, err
	}

	unlock, err := u.lockDoctors(ctx, doctors)
	if err != nil {
		return nil, err
	}
	release = unlock

	result := &dto.DeactivationResponse{}
	if err := u.retireDoctors(tx, doctors, result); err != nil {
		return nil, err
	}

	investigations, err := u.investigationRepo.FindActiveBySpecialty(tx, specialty.ID)
	if err != nil {
		u.log.Warnf("Failed to find investigations of specialty %d: %+v", specialty.ID, err)
		return nil, err
	}
	for i := range investigations {
		investigations[i].Remove()
	}
	if err := u.investigationRepo.SaveAll(tx, investigations); err != nil {
		u.log.Warnf("Failed to save investigations of specialty %d: %+v", specialty.ID, err)
		return nil, err
	}
	result.Investigations = len(investigations)

	specialty.Remove()
	if err := u.specialtyRepo.Update(tx, specialty); err != nil {
		u.log.Warnf("Failed to deactivate specialty %d: %+v", specialty.ID, err)
		return nil, err
	}

	if err := u.auditService.LogCascade(tx, entity.AuditActionSpecialtyDeactivate, "specialty", strconv.Itoa(specialty.ID), cascadeEffects(result)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit specialty deactivation: %+v", err)
		return nil, err
	}

	u.log.Infof("Specialty deactivated: id=%d, doctors=%d, investigations=%d", specialty.ID, result.Doctors, result.Investigations)
	return result, nil
}

// lockDoctors takes the booking lock of each doctor in ascending ID order so
// two cascades over overlapping doctors cannot wait on each other. The
// returned func releases everything taken.
func (u *cascadeUsecase) lockDoctors(ctx context.Context, doctors []entity.Doctor) (func(), error) {
	ids := make([]int, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
	}
	sort.Ints(ids)

	unlocks := make([]func(), 0, len(ids))
	releaseAll := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
	for _, id := range ids {
		unlock, err := u.locker.Lock(ctx, id)
		if err != nil {
			releaseAll()
			if errors.Is(err, service.ErrDoctorBusy) {
				return nil, ErrDoctorBusy
			}
			u.log.Warnf("Failed to lock doctor %d for deactivation: %+v", id, err)
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return releaseAll, nil
}

// retireDoctors marks each doctor removed and cancels what hangs off it.
// Vacations go first, then appointments, then working hours; the doctors are
// saved together at the end. DONE vacations stay as they are.
func (u *cascadeUsecase) retireDoctors(tx *gorm.DB, doctors []entity.Doctor, result *dto.DeactivationResponse) error {
	for i := range doctors {
		doctor := &doctors[i]
		doctor.Remove()

		vacations, err := u.vacationRepo.CancelOpenForDoctor(tx, doctor.ID)
		if err != nil {
			u.log.Warnf("Failed to cancel vacations for doctor %d: %+v", doctor.ID, err)
			return err
		}
		result.Vacations += vacations

		summary, err := u.appointmentUsecase.CancelAllAppointmentsForDoctor(tx, doctor)
		if err != nil {
			return err
		}
		result.Appointments += summary.Canceled

		removed, err := u.workingHoursRepo.RemoveAllForDoctor(tx, doctor.ID)
		if err != nil {
			u.log.Warnf("Failed to remove working hours for doctor %d: %+v", doctor.ID, err)
			return err
		}
		result.WorkingHours += removed
	}

	if err := u.doctorRepo.SaveAll(tx, doctors); err != nil {
		u.log.Warnf("Failed to save deactivated doctors: %+v", err)
		return err
	}
	result.Doctors = len(doctors)

	return nil
}

func cascadeEffects(result *dto.DeactivationResponse) entity.JSON {
	return entity.JSON{
		"doctors":        result.Doctors,
		"investigations": result.Investigations,
		"vacations":      result.Vacations,
		"appointments":   result.Appointments,
		"working_hours":  result.WorkingHours,
	}
}
