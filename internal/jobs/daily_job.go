package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/internal/domain/entity"
	"github.com/felixcirebea/medicalsys-sub000/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const dailyJobTimeout = 2 * time.Minute

// DailyJob rolls the operational date forward and advances vacation statuses.
type DailyJob struct {
	cron            *cron.Cron
	log             *logrus.Logger
	clockUsecase    usecase.ClockUsecase
	vacationUsecase usecase.VacationUsecase
}

func NewDailyJob(log *logrus.Logger, clockUsecase usecase.ClockUsecase, vacationUsecase usecase.VacationUsecase) *DailyJob {
	return &DailyJob{
		cron:            cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:             log,
		clockUsecase:    clockUsecase,
		vacationUsecase: vacationUsecase,
	}
}

// Start schedules the job with a standard five-field cron spec.
func (j *DailyJob) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return fmt.Errorf("invalid daily job spec %q: %w", spec, err)
	}
	j.cron.Start()
	j.log.Infof("Daily job scheduled: %s", spec)
	return nil
}

// Stop waits for a running invocation to finish or ctx to expire.
func (j *DailyJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.log.Warn("Daily job did not finish before shutdown")
	}
}

func (j *DailyJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), dailyJobTimeout)
	defer cancel()

	if err := j.RunOnce(ctx); err != nil {
		j.log.Errorf("Daily job failed: %+v", err)
	}
}

// RunOnce performs a single pass of the job.
func (j *DailyJob) RunOnce(ctx context.Context) error {
	today, err := j.clockUsecase.AdvanceToWallClock(ctx)
	if err != nil {
		return fmt.Errorf("advance operational date: %w", err)
	}

	started, finished, err := j.vacationUsecase.AdvanceStatuses(ctx, today)
	if err != nil {
		return fmt.Errorf("advance vacation statuses: %w", err)
	}

	j.log.WithFields(logrus.Fields{
		"operational_date":   today.Format(entity.DateLayout),
		"vacations_started":  started,
		"vacations_finished": finished,
	}).Info("Daily job completed")
	return nil
}
