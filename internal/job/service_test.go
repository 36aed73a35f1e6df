package job

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hospital_jobs_backend/internal/common"
	"hospital_jobs_backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupJobService(t *testing.T, cfg *config.Config) Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err, "Failed to open test database")

	err = db.Migrator().DropTable(&Job{})
	require.NoError(t, err, "Failed to drop jobs table")
	err = db.AutoMigrate(&Job{})
	require.NoError(t, err, "Failed to migrate jobs table")

	if cfg == nil {
		cfg = &config.Config{RecentJobsLimit: 10}
	}
	logger, _ := zap.NewDevelopment()
	return NewService(NewGORMRepository(db, 0), cfg, logger)
}

func registerJob(owner uuid.UUID, title, date string) RegisterJobRequest {
	return RegisterJobRequest{
		Title:     title,
		Company:   "St. Mary Hospital",
		Location:  "Nairobi",
		JobType:   "Full-time",
		ApplyLink: "https://example.com/apply",
		Date:      date,
		Contact:   "hr@stmary.example",
		UserID:    owner.String(),
		JobSalary: "55000",
	}
}

func TestCreate(t *testing.T) {
	svc := setupJobService(t, nil)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, registerJob(owner, "Nurse", "2024-03-15"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), created.PostedAt)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := setupJobService(t, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, registerJob(uuid.New(), "Nurse", "15/03/2024"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestListAll(t *testing.T) {
	svc := setupJobService(t, nil)
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.ListAll(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound, "empty catalog reports not found")

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, registerJob(owner, fmt.Sprintf("Job %d", i), "2024-03-15"))
		require.NoError(t, err)
	}

	jobs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestListByOwner(t *testing.T) {
	svc := setupJobService(t, nil)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, registerJob(alice, fmt.Sprintf("Alice %d", i), "2024-03-15"))
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, registerJob(bob, "Bob 0", "2024-03-15"))
	require.NoError(t, err)

	jobs, err := svc.ListByOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, alice, j.UserID)
	}

	_, err = svc.ListByOwner(ctx, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListRecent(t *testing.T) {
	svc := setupJobService(t, &config.Config{RecentJobsLimit: 10})
	ctx := context.Background()
	owner := uuid.New()

	// 15 postings on consecutive days; only the newest 10 should come back.
	for day := 1; day <= 15; day++ {
		date := fmt.Sprintf("2024-03-%02d", day)
		_, err := svc.Create(ctx, registerJob(owner, fmt.Sprintf("Job day %d", day), date))
		require.NoError(t, err)
	}

	jobs, err := svc.ListRecent(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 10)
	for i := 1; i < len(jobs); i++ {
		assert.False(t, jobs[i].PostedAt.After(jobs[i-1].PostedAt),
			"recent jobs must be in descending posting-date order")
	}
	assert.True(t, jobs[0].PostedAt.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, jobs[9].PostedAt.Equal(time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)))
}

func TestDelete(t *testing.T) {
	svc := setupJobService(t, nil)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, registerJob(owner, "Nurse", "2024-03-15"))
	require.NoError(t, err)

	// Enforcement is off: no requester id needed, and deleting an unknown id
	// simply reports zero rows.
	deleted, err := svc.Delete(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = svc.Delete(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	_, err = svc.ListAll(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteWithOwnershipEnforced(t *testing.T) {
	svc := setupJobService(t, &config.Config{RecentJobsLimit: 10, EnforceJobOwnership: true})
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.Create(ctx, registerJob(owner, "Nurse", "2024-03-15"))
	require.NoError(t, err)

	_, err = svc.Delete(ctx, created.ID, nil)
	assert.ErrorIs(t, err, common.ErrBadRequest, "requester id is required under enforcement")

	_, err = svc.Delete(ctx, created.ID, &stranger)
	assert.ErrorIs(t, err, common.ErrNotFound, "a non-owner cannot delete")

	deleted, err := svc.Delete(ctx, created.ID, &owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestPurgeOlderThan(t *testing.T) {
	svc := setupJobService(t, nil)
	ctx := context.Background()
	owner := uuid.New()

	old := time.Now().AddDate(0, 0, -40).Format("2006-01-02")
	fresh := time.Now().Format("2006-01-02")
	_, err := svc.Create(ctx, registerJob(owner, "Stale", old))
	require.NoError(t, err)
	_, err = svc.Create(ctx, registerJob(owner, "Fresh", fresh))
	require.NoError(t, err)

	purged, err := svc.PurgeOlderThan(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	jobs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Fresh", jobs[0].Title)
}
