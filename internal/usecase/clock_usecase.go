package usecase

import (
	"context"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/dto"
	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdjustableClock is the operational clock as seen by operators and the daily job.
type AdjustableClock interface {
	service.Clock
	Set(ctx context.Context, date time.Time) error
	AdvanceTo(ctx context.Context, date time.Time) (bool, error)
	WallClockDate() time.Time
}

type ClockUsecase interface {
	GetClock(ctx context.Context) *dto.ClockResponse
	SetOperationalDate(ctx context.Context, date time.Time) (*dto.ClockResponse, error)
	// AdvanceToWallClock moves the operational date up to the host date, never backwards.
	AdvanceToWallClock(ctx context.Context) (time.Time, error)
}

type clockUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clock        AdjustableClock
	auditService service.AuditService
}

func NewClockUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock AdjustableClock,
	auditService service.AuditService,
) ClockUsecase {
	return &clockUsecase{
		db:           db,
		log:          log,
		clock:        clock,
		auditService: auditService,
	}
}

func (u *clockUsecase) GetClock(ctx context.Context) *dto.ClockResponse {
	return &dto.ClockResponse{
		OperationalDate: u.clock.Today().Format(entity.DateLayout),
		WallClockDate:   u.clock.WallClockDate().Format(entity.DateLayout),
	}
}

func (u *clockUsecase) SetOperationalDate(ctx context.Context, date time.Time) (*dto.ClockResponse, error) {
	previous := u.clock.Today().Format(entity.DateLayout)

	if err := u.clock.Set(ctx, date); err != nil {
		u.log.Warnf("Failed to set operational date: %+v", err)
		return nil, err
	}

	current := u.clock.Today().Format(entity.DateLayout)
	if err := u.auditService.LogUpdate(u.db.WithContext(ctx), entity.AuditActionClockAdvance, "clock", "operational_date", previous, current); err != nil {
		// the clock already moved; the audit row is best effort here
		u.log.Warnf("Failed to audit operational date change: %+v", err)
	}

	return u.GetClock(ctx), nil
}

func (u *clockUsecase) AdvanceToWallClock(ctx context.Context) (time.Time, error) {
	previous := u.clock.Today()

	changed, err := u.clock.AdvanceTo(ctx, u.clock.WallClockDate())
	if err != nil {
		u.log.Warnf("Failed to advance operational date: %+v", err)
		return previous, err
	}

	today := u.clock.Today()
	if changed {
		if err := u.auditService.LogUpdate(u.db.WithContext(ctx), entity.AuditActionClockAdvance, "clock", "operational_date",
			previous.Format(entity.DateLayout), today.Format(entity.DateLayout)); err != nil {
			u.log.Warnf("Failed to audit operational date change: %+v", err)
		}
	}

	return today, nil
}
