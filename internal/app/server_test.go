package app

import (
	"context"
	"testing"
	"time"

	"hospital_jobs_backend/internal/config"
	"hospital_jobs_backend/internal/job"
	"hospital_jobs_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGracefulShutdownIsNotAnError(t *testing.T) {
	logger := zap.NewNop()
	cfg := &config.Config{
		GinMode:        gin.TestMode,
		ServerHost:     "127.0.0.1",
		ServerPort:     "0",
		AllowedOrigins: []string{"https://localhost:3001"},
	}

	server, err := NewServer(cfg, logger,
		user.NewHandler(nil, logger),
		job.NewHandler(nil, logger),
		nil,
	)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- server.Start()
	}()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err, "a shut-down server must not report an error from Start")
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
