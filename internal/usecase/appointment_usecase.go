package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/converter"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"
	"github.com/felixcirebea/medicalsys-sub000/internal/service"
	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = apperror.NotFound("appointment not found")
	ErrSlotNotAvailable    = apperror.Concurrency("slot not available")
	ErrDoctorBusy          = apperror.Concurrency("another booking for this doctor is in progress, retry shortly")
	ErrPastMidnight        = apperror.Mismatch("appointment must end on the same day")
)

// DoctorLocker serializes booking writes for one doctor across requests and instances.
type DoctorLocker interface {
	Lock(ctx context.Context, doctorID int) (func(), error)
}

// BulkCancelSummary describes a bulk cancellation for logging.
type BulkCancelSummary struct {
	DoctorName string
	Canceled   int64
}

func (s BulkCancelSummary) String() string {
	return fmt.Sprintf("canceled %d appointment(s) for doctor %s", s.Canceled, s.DoctorName)
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, doctorName, investigationName, clientName string, date time.Time, start entity.TimeOfDay) (uuid.UUID, error)
	CancelAppointment(ctx context.Context, id uuid.UUID, clientName string) error
	// CancelAllAppointmentsForDoctor runs inside the caller's transaction.
	CancelAllAppointmentsForDoctor(tx *gorm.DB, doctor *entity.Doctor) (BulkCancelSummary, error)
	GetAppointments(ctx context.Context, doctorName string, date time.Time) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	clock             service.Clock
	locker            DoctorLocker
	doctorRepo        repository.DoctorRepository
	investigationRepo repository.InvestigationRepository
	appointmentRepo   repository.AppointmentRepository
	auditService      service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock service.Clock,
	locker DoctorLocker,
	doctorRepo repository.DoctorRepository,
	investigationRepo repository.InvestigationRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		clock:             clock,
		locker:            locker,
		doctorRepo:        doctorRepo,
		investigationRepo: investigationRepo,
		appointmentRepo:   appointmentRepo,
		auditService:      auditService,
	}
}

// BookAppointment reserves [start, start+duration) with the doctor.
//
// Flow:
// 1. Reject past dates before touching the database
// 2. Resolve the active doctor and investigation
// 3. Take the doctor's booking lock (local mutex + Redis)
// 4. Inside a SERIALIZABLE transaction: confirm the doctor is still active,
//    then overlap check, insert, audit
//
// Cascades take the same doctor lock, so a doctor cannot be retired between
// step 4's check and the commit.
//
// The appointments exclusion constraint backs step 4; a violation surfaces as
// ErrSlotNotAvailable just like the explicit check.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, doctorName, investigationName, clientName string, date time.Time, start entity.TimeOfDay) (uuid.UUID, error) {
	date = entity.DateOf(date)
	if date.Before(u.clock.Today()) {
		return uuid.Nil, ErrPastDate
	}
	if !start.Valid() {
		return uuid.Nil, ErrInvalidTimeFormat
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindActiveByName(db, doctorName)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", doctorName, err)
		return uuid.Nil, err
	}
	if doctor == nil {
		return uuid.Nil, ErrDoctorNotFound
	}

	investigation, err := u.investigationRepo.FindActiveByName(db, investigationName)
	if err != nil {
		u.log.Warnf("Failed to find investigation %q: %+v", investigationName, err)
		return uuid.Nil, err
	}
	if investigation == nil {
		return uuid.Nil, ErrInvestigationNotFound
	}

	end := start.Add(investigation.Duration())
	if !end.ValidEnd() {
		return uuid.Nil, ErrPastMidnight
	}

	unlock, err := u.locker.Lock(ctx, doctor.ID)
	if err != nil {
		if errors.Is(err, service.ErrDoctorBusy) {
			return uuid.Nil, ErrDoctorBusy
		}
		u.log.Warnf("Failed to lock doctor %d for booking: %+v", doctor.ID, err)
		return uuid.Nil, err
	}
	defer unlock()

	tx := db.Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return uuid.Nil, tx.Error
	}
	defer tx.Rollback()

	// A cascade may have retired the doctor while we waited for the lock
	current, err := u.doctorRepo.FindByID(tx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to reload doctor %d: %+v", doctor.ID, err)
		return uuid.Nil, err
	}
	if current == nil || !current.IsActive() {
		return uuid.Nil, ErrDoctorNotFound
	}

	taken, err := u.appointmentRepo.ExistsOverlap(tx, doctor.ID, date, start, end)
	if err != nil {
		u.log.Warnf("Failed to check overlapping appointments: %+v", err)
		return uuid.Nil, err
	}
	if taken {
		return uuid.Nil, ErrSlotNotAvailable
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		DoctorID:        doctor.ID,
		InvestigationID: investigation.ID,
		ClientName:      clientName,
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		Price:           entity.ComputePrice(investigation.BasePrice, doctor.PriceRate),
		Status:          entity.AppointmentStatusNew,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isContentionError(err) {
			return uuid.Nil, ErrSlotNotAvailable
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return uuid.Nil, err
	}

	if err := u.auditService.LogCreate(tx, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isContentionError(err) {
			return uuid.Nil, ErrSlotNotAvailable
		}
		u.log.Warnf("Failed to commit appointment: %+v", err)
		return uuid.Nil, err
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%d, date=%s, start=%s, price=%s",
		appointment.ID, doctor.ID, date.Format(entity.DateLayout), start, appointment.Price.StringFixed(2))
	return appointment.ID, nil
}

// CancelAppointment cancels a NEW appointment only when the client name matches the booking.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID, clientName string) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByIDAndClientAndStatus(tx, id, clientName, entity.AppointmentStatusNew)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	// Conditional update: a concurrent cancel leaves zero rows here
	rows, err := u.appointmentRepo.CancelAppointment(tx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogUpdate(tx, entity.AuditActionAppointmentCancel, "appointment", id.String(), entity.AppointmentStatusNew, entity.AppointmentStatusCanceled); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit appointment cancellation: %+v", err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%s", id)
	return nil
}

func (u *appointmentUsecase) CancelAllAppointmentsForDoctor(tx *gorm.DB, doctor *entity.Doctor) (BulkCancelSummary, error) {
	summary := BulkCancelSummary{DoctorName: doctor.Name}

	rows, err := u.appointmentRepo.CancelAllForDoctor(tx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointments for doctor %d: %+v", doctor.ID, err)
		return summary, err
	}

	summary.Canceled = rows
	u.log.Info(summary.String())
	return summary, nil
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context, doctorName string, date time.Time) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindActiveByName(db, doctorName)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", doctorName, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndDate(db, doctor.ID, entity.DateOf(date), entity.AppointmentStatusNew)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
