// File: internal/jobs/job_retention.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"hospital_jobs_backend/internal/config"
	"hospital_jobs_backend/internal/job"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// JobRetentionJob periodically purges job postings older than the configured
// retention window. It stays inert unless both JOB_RETENTION_DAYS and
// JOB_RETENTION_SCHEDULE are set, so the default API contract never loses
// rows behind a caller's back.
type JobRetentionJob struct {
	jobService    job.Service
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewJobRetentionJob creates a new JobRetentionJob.
func NewJobRetentionJob(jobService job.Service, logger *zap.Logger, cfg *config.Config) *JobRetentionJob {
	scheduler := cron.New(cron.WithLogger(newCronLogger(logger.Named("cron"))))
	return &JobRetentionJob{
		jobService:    jobService,
		logger:        logger.Named("JobRetentionJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *JobRetentionJob) SetupAndStart() error {
	if j.cfg.JobRetentionDays <= 0 || j.cfg.JobRetentionSchedule == "" {
		j.logger.Info("Job retention not configured, sweeper will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(j.cfg.JobRetentionSchedule, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule job retention sweep",
			zap.String("spec", j.cfg.JobRetentionSchedule), zap.Error(err))
		return err
	}

	j.logger.Info("Job retention sweep scheduled",
		zap.String("spec", j.cfg.JobRetentionSchedule),
		zap.Int("retention_days", j.cfg.JobRetentionDays),
		zap.Any("jobID", jobID),
	)
	j.cronScheduler.Start()
	return nil
}

func (j *JobRetentionJob) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	age := time.Duration(j.cfg.JobRetentionDays) * 24 * time.Hour
	purged, err := j.jobService.PurgeOlderThan(ctx, age)
	if err != nil {
		j.logger.Error("Job retention sweep failed", zap.Error(err))
		return
	}
	j.logger.Info("Job retention sweep completed", zap.Int64("jobs_purged", purged))
}

// Stop gracefully stops the cron scheduler.
func (j *JobRetentionJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("Job retention scheduler stopped.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("Job retention scheduler stop timed out.")
	}
}

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

func newCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.fields(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := append(cl.fields(keysAndValues...), zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) fields(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
	}
	return fields
}
