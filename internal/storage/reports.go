package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
)

const reportKeyPrefix = "fraud:preflight:"

var ErrReportNotFound = errors.New("preflight report not found")

// RedisReportStore keeps the latest preflight report of each worker.
type RedisReportStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func NewRedisReportStore(client redis.UniversalClient, ttl time.Duration) *RedisReportStore {
	return &RedisReportStore{
		client: client,
		ttl:    ttl,
	}
}

func reportKey(workerID uuid.UUID) string {
	return reportKeyPrefix + workerID.String()
}

func (s *RedisReportStore) SaveReport(ctx context.Context, report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := s.client.Set(ctx, reportKey(report.WorkerID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (s *RedisReportStore) LatestReport(ctx context.Context, workerID uuid.UUID) (*domain.Report, error) {
	data, err := s.client.Get(ctx, reportKey(workerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// Ping checks if Redis is reachable.
func (s *RedisReportStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisReportStore) Close() error {
	return s.client.Close()
}
