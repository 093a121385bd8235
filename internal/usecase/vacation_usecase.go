package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/converter"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/repository"
	"github.com/felixcirebea/medicalsys-sub000/internal/service"
	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVacationNotFound       = apperror.NotFound("vacation not found")
	ErrVacationAlreadyPlanned = apperror.Concurrency("vacation already planned for this period")
	ErrVacationFinished       = apperror.Concurrency("vacation is already finished")
	ErrInvalidVacationType    = apperror.Mismatch("invalid vacation type, use VACATION, SICK_LEAVE or OTHER")
)

type VacationUsecase interface {
	InsertVacation(ctx context.Context, doctorName string, start, end time.Time, vacationType entity.VacationType) (int, error)
	CancelVacation(ctx context.Context, doctorName string, start time.Time) (int, error)
	GetVacations(ctx context.Context, doctorName string) (*dto.VacationListResponse, error)
	// AdvanceStatuses moves vacations along PLANNED -> IN_PROGRESS -> DONE as of today.
	AdvanceStatuses(ctx context.Context, today time.Time) (started, finished int64, err error)
}

type vacationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clock        service.Clock
	locker       DoctorLocker
	clinicWide   bool
	doctorRepo   repository.DoctorRepository
	vacationRepo repository.VacationRepository
	auditService service.AuditService
}

// NewVacationUsecase builds the vacation manager. With clinicWide set, a new
// vacation conflicts with any doctor's vacation instead of only the same doctor's.
func NewVacationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock service.Clock,
	locker DoctorLocker,
	clinicWide bool,
	doctorRepo repository.DoctorRepository,
	vacationRepo repository.VacationRepository,
	auditService service.AuditService,
) VacationUsecase {
	return &vacationUsecase{
		db:           db,
		log:          log,
		clock:        clock,
		locker:       locker,
		clinicWide:   clinicWide,
		doctorRepo:   doctorRepo,
		vacationRepo: vacationRepo,
		auditService: auditService,
	}
}

func (u *vacationUsecase) InsertVacation(ctx context.Context, doctorName string, start, end time.Time, vacationType entity.VacationType) (int, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindActiveByName(db, doctorName)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", doctorName, err)
		return 0, err
	}
	if doctor == nil {
		return 0, ErrDoctorNotFound
	}

	start, end = entity.DateOf(start), entity.DateOf(end)
	if start.Before(u.clock.Today()) {
		return 0, ErrPastDate
	}
	if start.After(end) {
		return 0, ErrInvalidDateRange
	}
	if !vacationType.Valid() {
		return 0, ErrInvalidVacationType
	}

	unlock, err := u.locker.Lock(ctx, doctor.ID)
	if err != nil {
		if errors.Is(err, service.ErrDoctorBusy) {
			return 0, ErrDoctorBusy
		}
		return 0, err
	}
	defer unlock()

	tx := db.Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer tx.Rollback()

	var scope *int
	if !u.clinicWide {
		scope = &doctor.ID
	}
	overlaps, err := u.vacationRepo.ExistsOverlap(tx, scope, start, end)
	if err != nil {
		u.log.Warnf("Failed to check overlapping vacations: %+v", err)
		return 0, err
	}
	if overlaps {
		return 0, ErrVacationAlreadyPlanned
	}

	vacation := &entity.Vacation{
		DoctorID:  doctor.ID,
		StartDate: start,
		EndDate:   end,
		Type:      vacationType,
		Status:    entity.VacationStatusPlanned,
	}
	if err := u.vacationRepo.Create(tx, vacation); err != nil {
		if isContentionError(err) {
			return 0, ErrVacationAlreadyPlanned
		}
		u.log.Warnf("Failed to create vacation: %+v", err)
		return 0, err
	}

	if err := u.auditService.LogCreate(tx, entity.AuditActionVacationPlan, "vacation", strconv.Itoa(vacation.ID), converter.VacationToResponse(vacation)); err != nil {
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		if isContentionError(err) {
			return 0, ErrVacationAlreadyPlanned
		}
		u.log.Warnf("Failed to commit vacation: %+v", err)
		return 0, err
	}

	u.log.Infof("Vacation planned: id=%d, doctor=%d, %s..%s", vacation.ID, doctor.ID,
		start.Format(entity.DateLayout), end.Format(entity.DateLayout))
	return vacation.ID, nil
}

func (u *vacationUsecase) CancelVacation(ctx context.Context, doctorName string, start time.Time) (int, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindActiveByName(tx, doctorName)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", doctorName, err)
		return 0, err
	}
	if doctor == nil {
		return 0, ErrDoctorNotFound
	}

	start = entity.DateOf(start)
	if start.Before(u.clock.Today()) {
		return 0, ErrPastDate
	}

	vacation, err := u.vacationRepo.FindActiveByDoctorAndStartDate(tx, doctor.ID, start)
	if err != nil {
		u.log.Warnf("Failed to find vacation: %+v", err)
		return 0, err
	}
	if vacation == nil {
		return 0, ErrVacationNotFound
	}

	previous := vacation.Status
	if err := vacation.Cancel(); err != nil {
		return 0, ErrVacationFinished
	}

	if err := u.vacationRepo.Update(tx, vacation); err != nil {
		u.log.Warnf("Failed to cancel vacation %d: %+v", vacation.ID, err)
		return 0, err
	}

	if err := u.auditService.LogUpdate(tx, entity.AuditActionVacationCancel, "vacation", strconv.Itoa(vacation.ID), previous, vacation.Status); err != nil {
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit vacation cancellation: %+v", err)
		return 0, err
	}

	u.log.Infof("Vacation cancelled: id=%d, doctor=%d", vacation.ID, doctor.ID)
	return vacation.ID, nil
}

func (u *vacationUsecase) GetVacations(ctx context.Context, doctorName string) (*dto.VacationListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindActiveByName(db, doctorName)
	if err != nil {
		u.log.Warnf("Failed to find doctor %q: %+v", doctorName, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	vacations, err := u.vacationRepo.FindByDoctor(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find vacations for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.VacationListResponse{
		Vacations: converter.VacationsToResponses(vacations),
		Total:     len(vacations),
	}, nil
}

// AdvanceStatuses finishes vacations that ended before today, then starts the
// planned ones that have begun. Finishing first lets a short vacation that was
// never started go straight to DONE.
func (u *vacationUsecase) AdvanceStatuses(ctx context.Context, today time.Time) (int64, int64, error) {
	today = entity.DateOf(today)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, 0, tx.Error
	}
	defer tx.Rollback()

	finished, err := u.vacationRepo.FinishDue(tx, today)
	if err != nil {
		u.log.Warnf("Failed to finish due vacations: %+v", err)
		return 0, 0, err
	}

	started, err := u.vacationRepo.StartDue(tx, today)
	if err != nil {
		u.log.Warnf("Failed to start due vacations: %+v", err)
		return 0, 0, err
	}

	if started > 0 || finished > 0 {
		effects := entity.JSON{"started": started, "finished": finished}
		if err := u.auditService.LogCascade(tx, entity.AuditActionVacationAdvance, "vacation", today.Format(entity.DateLayout), effects); err != nil {
			return 0, 0, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit vacation status update: %+v", err)
		return 0, 0, err
	}

	u.log.Infof("Vacation statuses advanced for %s: started=%d, finished=%d", today.Format(entity.DateLayout), started, finished)
	return started, finished, nil
}
