// File: cmd/server/providers.go
package main

import (
	"log"

	"hospital_jobs_backend/internal/config"
	"hospital_jobs_backend/internal/job"
	"hospital_jobs_backend/internal/platform/database"
	"hospital_jobs_backend/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// provideUserRepository binds the configured store deadline into the repository.
func provideUserRepository(db *gorm.DB, cfg *config.Config) user.Repository {
	return user.NewGORMRepository(db, cfg.StoreTimeout)
}

// provideJobRepository binds the configured store deadline into the repository.
func provideJobRepository(db *gorm.DB, cfg *config.Config) job.Repository {
	return job.NewGORMRepository(db, cfg.StoreTimeout)
}

func provideCleanup(logger *zap.Logger, db *gorm.DB) func() {
	return func() {
		logger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db)
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
		log.Println("Cleanup finished.")
	}
}
