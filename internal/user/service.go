// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"

	"hospital_jobs_backend/internal/common"
	"hospital_jobs_backend/internal/credential"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authentication outcomes. The HTTP layer reports both with the same
// generic message so callers cannot enumerate accounts; the distinction
// stays internal.
var (
	ErrEmailNotFound    = errors.New("email not registered")
	ErrWrongCredentials = errors.New("wrong credentials")
)

// Service is the user directory: registration, lookups, authentication and
// the password flows.
type Service interface {
	Register(ctx context.Context, req SignupRequest) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, title, qualification string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
}

type service struct {
	repo          Repository
	resetProvider credential.ResetProvider
	logger        *zap.Logger
}

var _ Service = (*service)(nil)

// NewService creates a new user service.
func NewService(repo Repository, resetProvider credential.ResetProvider, logger *zap.Logger) Service {
	return &service{
		repo:          repo,
		resetProvider: resetProvider,
		logger:        logger,
	}
}

// Register hashes the password and inserts one user record. There is no
// pre-check on the email here: the store's unique index is the arbiter, and
// the separate existence-check endpoint is only a client-side guard.
func (s *service) Register(ctx context.Context, req SignupRequest) (*User, error) {
	if len(req.Password) > credential.MaxPasswordBytes {
		return nil, common.ErrBadRequest.WithDetails("The password may not be longer than 72 bytes.")
	}
	hash, err := credential.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Gender:       req.Gender,
		DateOfBirth:  req.DOB,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		s.logger.Error("Failed to create user in repository", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	s.logger.Info("User registered", zap.String("userID", newUser.ID.String()))
	return newUser, nil
}

// ExistsByEmail reports whether the email is already registered.
func (s *service) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

// Authenticate looks up the user by email and verifies the password hash.
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	dbUser, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Info("Authentication attempt for unknown email")
			return nil, ErrEmailNotFound
		}
		s.logger.Error("Store failure during authentication", zap.Error(err))
		return nil, err
	}

	if !credential.CheckPassword(password, dbUser.PasswordHash) {
		s.logger.Warn("Invalid password attempt", zap.String("userID", dbUser.ID.String()))
		return nil, ErrWrongCredentials
	}

	return dbUser, nil
}

// GetByID returns the user or common.ErrNotFound.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile writes title and qualification. An id matching no row is
// reported as success; clients treat the update as fire-and-forget.
func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, title, qualification string) error {
	if err := s.repo.UpdateProfile(ctx, id, title, qualification); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err), zap.String("userID", id.String()))
		return err
	}
	return nil
}

// UpdatePassword re-hashes and persists; unknown ids fail with NotFound.
func (s *service) UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if len(newPassword) > credential.MaxPasswordBytes {
		return common.ErrBadRequest.WithDetails("The password may not be longer than 72 bytes.")
	}
	hash, err := credential.HashPassword(newPassword)
	if err != nil {
		s.logger.Error("Failed to hash password during update", zap.Error(err))
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Failed to persist password update", zap.Error(err), zap.String("userID", id.String()))
		}
		return err
	}
	s.logger.Info("Password updated", zap.String("userID", id.String()))
	return nil
}

// RequestPasswordReset delegates to the external auth provider.
func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	return s.resetProvider.SendPasswordReset(ctx, email)
}
