package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

func skipIfNoRedis(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_REDIS") != "true" {
		t.Skip("Skipping: TEST_REDIS not set. Run with docker-compose up -d")
	}
}

func redisAddr() string {
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		return v
	}
	return "localhost:6379"
}

func TestRedisReportStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	store := NewRedisReportStore(NewRedisClient("127.0.0.1:1", "", 0), time.Minute)
	defer store.Close()

	assert.Error(t, store.Ping(ctx))
	assert.Error(t, store.SaveReport(ctx, &domain.Report{WorkerID: uuid.New()}))
}

func TestRedisReportStore_SaveAndLoad(t *testing.T) {
	skipIfNoRedis(t)

	ctx := context.Background()
	store := NewRedisReportStore(NewRedisClient(redisAddr(), os.Getenv("REDIS_PASSWORD"), 0), time.Minute)
	defer store.Close()
	require.NoError(t, store.Ping(ctx))

	report := &domain.Report{
		WorkerID:  uuid.New(),
		StartedAt: time.Now().UTC().Truncate(time.Millisecond),
		Sanity:    domain.CheckResult{Name: "sanity", Status: domain.StatusPassed},
		Dependencies: []domain.CheckResult{
			{Name: "go-redis", Kind: "store", Status: domain.StatusPassed},
		},
	}
	require.NoError(t, store.SaveReport(ctx, report))

	loaded, err := store.LatestReport(ctx, report.WorkerID)
	require.NoError(t, err)
	assert.Equal(t, report.Checks(), loaded.Checks())
	assert.True(t, loaded.Passed())
}

func TestRedisReportStore_NotFound(t *testing.T) {
	skipIfNoRedis(t)

	store := NewRedisReportStore(NewRedisClient(redisAddr(), os.Getenv("REDIS_PASSWORD"), 0), time.Minute)
	defer store.Close()

	_, err := store.LatestReport(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestNewPostgresDB_InvalidDSN(t *testing.T) {
	_, err := NewPostgresDB(context.Background(), "postgres://%zz")
	assert.ErrorContains(t, err, "unable to parse connection string")
}
