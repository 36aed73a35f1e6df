// File: internal/job/repository.go
package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the record-store surface the job catalog depends on.
type Repository interface {
	Create(ctx context.Context, job *Job) error
	// DeleteByID removes the row unconditionally and reports how many rows
	// went away (zero is not an error).
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	// DeleteByIDAndOwner removes the row only when it belongs to ownerID.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
	FindAll(ctx context.Context) ([]Job, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Job, error)
	// FindRecent returns up to limit jobs ordered by posting date descending.
	// Ties on posting date fall back to creation time, then id, so the
	// ordering is stable across stores.
	FindRecent(ctx context.Context, limit int) ([]Job, error)
	// DeleteOlderThan purges postings whose posting date is before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type gormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGORMRepository creates a new GORM job repository with a per-call store
// deadline.
func NewGORMRepository(db *gorm.DB, timeout time.Duration) Repository {
	return &gormRepository{db: db, timeout: timeout}
}

func (r *gormRepository) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts one job row. Owner existence is not checked here; the
// reference is weak by contract.
func (r *gormRepository) Create(ctx context.Context, job *Job) error {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(job).Error
}

// DeleteByID removes a job by id alone.
func (r *gormRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Job{})
	return result.RowsAffected, result.Error
}

// DeleteByIDAndOwner removes a job only when the owner matches.
func (r *gormRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&Job{})
	return result.RowsAffected, result.Error
}

// FindAll returns every job row.
func (r *gormRepository) FindAll(ctx context.Context) ([]Job, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	var jobs []Job
	err := r.db.WithContext(ctx).Find(&jobs).Error
	return jobs, err
}

// FindByOwner returns the jobs posted by ownerID.
func (r *gormRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Job, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	var jobs []Job
	err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&jobs).Error
	return jobs, err
}

// FindRecent returns the newest postings first.
func (r *gormRepository) FindRecent(ctx context.Context, limit int) ([]Job, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	var jobs []Job
	err := r.db.WithContext(ctx).
		Order("posted_at DESC").
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// DeleteOlderThan purges postings older than the cutoff.
func (r *gormRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Where("posted_at < ?", cutoff).Delete(&Job{})
	return result.RowsAffected, result.Error
}
