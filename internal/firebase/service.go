// File: internal/firebase/service.go
package firebase

import (
	"context"
	"fmt"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"hospital_jobs_backend/internal/common"
	"hospital_jobs_backend/internal/config"
	"hospital_jobs_backend/internal/credential"
)

// Service wraps the Firebase Admin SDK as the external auth provider the
// password reset flow delegates to. When no service account key is
// configured the service stays disabled and reports itself unavailable
// rather than blocking startup.
type Service struct {
	authClient *auth.Client
	logger     *zap.Logger
}

var _ credential.ResetProvider = (*Service)(nil)

// NewService initializes the Firebase Admin SDK from the configured service
// account key.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if cfg.FirebaseServiceAccountKeyPath == "" {
		logger.Warn("Firebase service account key not configured; password reset delegation disabled.")
		return &Service{logger: logger}, nil
	}

	opt := option.WithCredentialsFile(filepath.Clean(cfg.FirebaseServiceAccountKeyPath))

	var app *firebase.App
	var err error
	if cfg.FirebaseProjectID != "" {
		app, err = firebase.NewApp(context.Background(), &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opt)
	} else {
		app, err = firebase.NewApp(context.Background(), nil, opt)
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	return &Service{authClient: authClient, logger: logger}, nil
}

// SendPasswordReset asks the provider to issue a password reset for the
// given email. The generated link never leaves this process.
func (s *Service) SendPasswordReset(ctx context.Context, email string) error {
	if s.authClient == nil {
		return common.ErrServiceUnavailable.WithMessage("Password reset is not available.")
	}

	if _, err := s.authClient.GetUserByEmail(ctx, email); err != nil {
		s.logger.Warn("Password reset requested for unknown email", zap.Error(err))
		return common.ErrNotFound.WithMessage("Email is not registered with the auth provider.")
	}

	if _, err := s.authClient.PasswordResetLink(ctx, email); err != nil {
		s.logger.Error("Auth provider failed to issue password reset", zap.Error(err))
		return fmt.Errorf("failed to request password reset: %w", err)
	}

	s.logger.Info("Password reset issued", zap.String("email", email))
	return nil
}
