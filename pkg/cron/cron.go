package cron

import (
	"context"
	"time"

	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/storage"

	"github.com/robfig/cron/v3"
)

type TaskScheduler struct {
	cronJob *cron.Cron
	logger  logger.LoggerI
	storage storage.StorageI
	now     func() time.Time
}

type TaskSchedulerI interface {
	RunJobs(ctx context.Context, expirySchedule string) error
	SuspendExpiredEnrollments(ctx context.Context) error
	Stop()
}

func New(log logger.LoggerI, storage storage.StorageI) TaskSchedulerI {
	return &TaskScheduler{
		cronJob: cron.New(),
		logger:  log,
		storage: storage,
		now:     time.Now,
	}
}

// RunJobs registers the jobs and starts the scheduler. An empty schedule
// leaves the expiry job out.
func (t *TaskScheduler) RunJobs(ctx context.Context, expirySchedule string) error {
	t.logger.Info("Jobs Started:")

	if expirySchedule != "" {
		_, err := t.cronJob.AddFunc(expirySchedule, func() {
			if err := t.SuspendExpiredEnrollments(ctx); err != nil {
				t.logger.Error("error in SuspendExpiredEnrollments", logger.Error(err))
			}
		})
		if err != nil {
			return err
		}
	}

	t.cronJob.Start()
	return nil
}

func (t *TaskScheduler) SuspendExpiredEnrollments(ctx context.Context) error {
	t.logger.Info("Running SuspendExpiredEnrollments job ...")

	n, err := t.storage.Enrollment().SuspendExpired(ctx, t.now())
	if err != nil {
		return err
	}

	t.logger.Info("expired enrollments suspended", logger.Any("count", n))
	return nil
}

// Stop waits for running jobs to finish.
func (t *TaskScheduler) Stop() {
	<-t.cronJob.Stop().Done()
}
