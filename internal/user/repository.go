// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital_jobs_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the record-store surface the user directory depends on.
// Implementations translate store-level failures into common.APIError values
// where a specific contract exists and pass everything else through raw.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// UpdateProfile sets exactly the title and qualification columns.
	// Matching zero rows is not an error; see the service contract.
	UpdateProfile(ctx context.Context, id uuid.UUID, title, qualification string) error
	// UpdatePassword persists a new hash; returns common.ErrNotFound when
	// the id matches no row.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type gormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGORMRepository creates a new GORM user repository. Every call runs
// under the given per-call store deadline.
func NewGORMRepository(db *gorm.DB, timeout time.Duration) Repository {
	return &gormRepository{db: db, timeout: timeout}
}

func (r *gormRepository) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a new user record. The store's unique index on email is the
// authoritative duplicate check; a violation surfaces as a conflict.
func (r *gormRepository) Create(ctx context.Context, user *User) error {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return common.ErrConflict.WithMessage("A user with this email already exists.")
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email. If the store ever holds duplicates
// the first match wins.
func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	var userModel User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithMessage("User not found with this email.")
		}
		return nil, err
	}
	return &userModel, nil
}

// ExistsByEmail reports whether at least one user record matches the email.
func (r *gormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByID retrieves a user by ID.
func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	var userModel User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithMessage("Cannot find the User")
		}
		return nil, err
	}
	return &userModel, nil
}

// UpdateProfile writes the two profile columns for the given id. Zero rows
// affected still returns nil; the update contract does not distinguish an
// unknown id from an unchanged row.
func (r *gormRepository) UpdateProfile(ctx context.Context, id uuid.UUID, title, qualification string) error {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":         title,
			"qualification": qualification,
		}).Error
}

// UpdatePassword persists a new password hash for the given id.
func (r *gormRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithMessage("Cannot find the User")
	}
	return nil
}
