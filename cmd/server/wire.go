// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"hospital_jobs_backend/internal/app"
	"hospital_jobs_backend/internal/config"
	"hospital_jobs_backend/internal/credential"
	"hospital_jobs_backend/internal/firebase"
	"hospital_jobs_backend/internal/job"
	"hospital_jobs_backend/internal/jobs"
	"hospital_jobs_backend/internal/platform/database"
	"hospital_jobs_backend/internal/platform/logger"
	"hospital_jobs_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,
		provideCleanup,

		// Password reset delegation
		firebase.NewService,
		wire.Bind(new(credential.ResetProvider), new(*firebase.Service)),

		// User Module
		provideUserRepository,
		user.NewService,
		user.NewHandler,

		// Job Module
		provideJobRepository,
		job.NewService,
		job.NewHandler,
		jobs.NewJobRetentionJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
