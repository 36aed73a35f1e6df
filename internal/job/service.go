// File: internal/job/service.go
package job

import (
	"context"
	"time"

	"hospital_jobs_backend/internal/common"
	"hospital_jobs_backend/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dateLayouts are accepted for the posting date, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Service is the job catalog.
type Service interface {
	Create(ctx context.Context, req RegisterJobRequest) (*Job, error)
	// Delete removes a job by id. requesterID is only consulted when
	// ownership enforcement is configured; with enforcement off any caller
	// who knows the id may delete.
	Delete(ctx context.Context, jobID uuid.UUID, requesterID *uuid.UUID) (int64, error)
	ListAll(ctx context.Context) ([]Job, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Job, error)
	ListRecent(ctx context.Context) ([]Job, error)
	// PurgeOlderThan removes postings older than the given age. Used by the
	// retention job.
	PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

type service struct {
	repo   Repository
	cfg    *config.Config
	logger *zap.Logger
}

var _ Service = (*service)(nil)

// NewService creates a new job catalog service.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) Service {
	return &service{repo: repo, cfg: cfg, logger: logger}
}

// Create inserts one job posting. The owner id is trusted as supplied; the
// catalog does not verify the user exists.
func (s *service) Create(ctx context.Context, req RegisterJobRequest) (*Job, error) {
	ownerID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, common.ErrBadRequest.WithDetails("Invalid userId format.")
	}

	postedAt, err := parseDate(req.Date)
	if err != nil {
		return nil, common.ErrBadRequest.WithDetails("Invalid date: expected YYYY-MM-DD or RFC 3339.")
	}

	newJob := &Job{
		Title:     req.Title,
		Company:   req.Company,
		Location:  req.Location,
		JobType:   req.JobType,
		ApplyLink: req.ApplyLink,
		Salary:    req.JobSalary,
		PostedAt:  postedAt,
		Contact:   req.Contact,
		UserID:    ownerID,
	}

	if err := s.repo.Create(ctx, newJob); err != nil {
		s.logger.Error("Failed to create job", zap.Error(err), zap.String("ownerID", ownerID.String()))
		return nil, err
	}

	s.logger.Info("Job registered", zap.String("jobID", newJob.ID.String()), zap.String("ownerID", ownerID.String()))
	return newJob, nil
}

func parseDate(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// Delete removes a job posting and reports the number of rows deleted.
func (s *service) Delete(ctx context.Context, jobID uuid.UUID, requesterID *uuid.UUID) (int64, error) {
	if s.cfg.EnforceJobOwnership {
		if requesterID == nil {
			return 0, common.ErrBadRequest.WithDetails("userId is required to delete a job.")
		}
		deleted, err := s.repo.DeleteByIDAndOwner(ctx, jobID, *requesterID)
		if err != nil {
			s.logger.Error("Failed to delete job", zap.Error(err), zap.String("jobID", jobID.String()))
			return 0, err
		}
		if deleted == 0 {
			return 0, common.ErrNotFound.WithMessage("Job not found or you do not have permission to delete it.")
		}
		return deleted, nil
	}

	deleted, err := s.repo.DeleteByID(ctx, jobID)
	if err != nil {
		s.logger.Error("Failed to delete job", zap.Error(err), zap.String("jobID", jobID.String()))
		return 0, err
	}
	return deleted, nil
}

// ListAll returns every posting, or common.ErrNotFound when the catalog is
// empty so the HTTP layer can tell "no rows" apart from a store failure.
func (s *service) ListAll(ctx context.Context) ([]Job, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list jobs", zap.Error(err))
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, common.ErrNotFound.WithMessage("No jobs found")
	}
	return jobs, nil
}

// ListByOwner returns the postings of one user, with the same empty-result
// signal as ListAll.
func (s *service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Job, error) {
	jobs, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list jobs by owner", zap.Error(err), zap.String("ownerID", ownerID.String()))
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, common.ErrNotFound.WithMessage("No jobs found")
	}
	return jobs, nil
}

// ListRecent returns the newest postings, capped by the configured limit.
func (s *service) ListRecent(ctx context.Context) ([]Job, error) {
	jobs, err := s.repo.FindRecent(ctx, s.cfg.RecentJobsLimit)
	if err != nil {
		s.logger.Error("Failed to list recent jobs", zap.Error(err))
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, common.ErrNotFound.WithMessage("No jobs found")
	}
	return jobs, nil
}

// PurgeOlderThan removes postings whose posting date is older than age.
func (s *service) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	purged, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to purge old jobs", zap.Error(err))
		return 0, err
	}
	if purged > 0 {
		s.logger.Info("Purged old job postings", zap.Int64("count", purged), zap.Time("cutoff", cutoff))
	}
	return purged, nil
}
