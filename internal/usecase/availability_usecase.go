package usecase

import (
	"context"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"
	"github.com/felixcirebea/medicalsys-sub000/internal/service"
	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound        = apperror.NotFound("doctor not found")
	ErrInvestigationNotFound = apperror.NotFound("investigation not found")
	ErrWorkingHoursNotFound  = apperror.NotFound("doctor has no working hours on this day")
)

type AvailabilityUsecase interface {
	GetAvailableHours(ctx context.Context, doctorName, investigationName string, date time.Time) ([]entity.TimeOfDay, error)
}

type availabilityUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	clock             service.Clock
	slotStep          time.Duration
	doctorRepo        repository.DoctorRepository
	investigationRepo repository.InvestigationRepository
	holidayRepo       repository.HolidayRepository
	appointmentRepo   repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock service.Clock,
	slotStep time.Duration,
	doctorRepo repository.DoctorRepository,
	investigationRepo repository.InvestigationRepository,
	holidayRepo repository.HolidayRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	if slotStep <= 0 {
		slotStep = service.DefaultSlotStep
	}
	return &availabilityUsecase{
		db:                db,
		log:               log,
		clock:             clock,
		slotStep:          slotStep,
		doctorRepo:        doctorRepo,
		investigationRepo: investigationRepo,
		holidayRepo:       holidayRepo,
		appointmentRepo:   appointmentRepo,
	}
}

// GetAvailableHours lists the start times still free for the investigation.
// Holidays and vacations yield an empty list; a missing working-hours row is
// an error because it means the doctor is not configured for that weekday.
func (u *availabilityUsecase) GetAvailableHours(ctx context.Context, doctorName, investigationName string, date time.Time) ([]entity.TimeOfDay, error) {
	date = entity.DateOf(date)
	if date.Before(u.clock.Today()) {
		return nil, ErrPastDate
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindActiveByName(db, doctorName)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", doctorName, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	investigation, err := u.investigationRepo.FindActiveByName(db, investigationName)
	if err != nil {
		u.log.Warnf("Failed to find investigation %q: %+v", investigationName, err)
		return nil, err
	}
	if investigation == nil {
		return nil, ErrInvestigationNotFound
	}

	workingHours := doctor.WorkingHoursFor(entity.ISOWeekday(date))
	if workingHours == nil {
		return nil, ErrWorkingHoursNotFound
	}

	holiday, err := u.holidayRepo.IsHoliday(db, date)
	if err != nil {
		u.log.Warnf("Failed to check holidays for %s: %+v", date.Format(entity.DateLayout), err)
		return nil, err
	}
	if holiday || doctor.IsOnVacation(date) {
		return []entity.TimeOfDay{}, nil
	}

	booked, err := u.appointmentRepo.FindByDoctorAndDate(db, doctor.ID, date, entity.AppointmentStatusNew)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return service.ComputeAvailableSlots(*workingHours, booked, investigation.Duration(), u.slotStep), nil
}
