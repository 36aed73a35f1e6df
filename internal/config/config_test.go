package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3002", cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 10, cfg.RecentJobsLimit)
	assert.False(t, cfg.EnforceJobOwnership)
	assert.Equal(t, []string{"https://ihospitaljobs.com", "https://localhost:3001"}, cfg.AllowedOrigins)

	// With no DB_SOURCE the DSN is assembled from the DB_* parts.
	assert.Contains(t, cfg.DBSource, "host=localhost")
	assert.Contains(t, cfg.DBSource, "dbname=hospital_jobs_db")
}

func TestLoadDBSourceOverride(t *testing.T) {
	t.Setenv("DB_SOURCE", "host=db.internal port=6432 user=svc dbname=jobs sslmode=require")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=db.internal port=6432 user=svc dbname=jobs sslmode=require", cfg.DBSource,
		"a supplied DB_SOURCE must win over the assembled DSN")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("STORE_TIMEOUT_SECONDS", "2")
	t.Setenv("ENFORCE_JOB_OWNERSHIP", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://one.example, https://two.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	assert.True(t, cfg.EnforceJobOwnership)
	assert.Equal(t, []string{"https://one.example", "https://two.example"}, cfg.AllowedOrigins)
}

func TestLoadRejectsMissingFirebaseKeyFile(t *testing.T) {
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "/nonexistent/key.json")

	_, err := Load()
	assert.Error(t, err)
}
