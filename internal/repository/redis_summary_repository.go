package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

// RedisSummaryRepository implements domain.SummaryRepository on a shared Redis
type RedisSummaryRepository struct {
	client *redis.Client
	logger domain.Logger
}

// NewRedisClient builds a client for the configured store. The connection is
// dialed on first use; commands are never retried and reads do not time out.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		MaxRetries:   -1,
		ReadTimeout:  -1,
		WriteTimeout: -1,
	})
}

// NewRedisSummaryRepository creates a new summary repository
func NewRedisSummaryRepository(client *redis.Client, logger domain.Logger) *RedisSummaryRepository {
	return &RedisSummaryRepository{
		client: client,
		logger: logger,
	}
}

// Store writes the summary under summary:<sessionID> with no expiry,
// overwriting any previous value
func (r *RedisSummaryRepository) Store(ctx context.Context, sessionID string, summary string) error {
	key := domain.SummaryKey(sessionID)
	if err := r.client.Set(ctx, key, summary, 0).Err(); err != nil {
		return apperrors.NewStoreError("failed to store summary", err)
	}
	r.logger.Debug("Summary written", "key", key, "bytes", len(summary))
	return nil
}

// Retrieve reads the summary for a session, domain.ErrSummaryNotFound if absent
func (r *RedisSummaryRepository) Retrieve(ctx context.Context, sessionID string) (string, error) {
	summary, err := r.client.Get(ctx, domain.SummaryKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrSummaryNotFound
	}
	if err != nil {
		return "", apperrors.NewStoreError("failed to read summary", err)
	}
	return summary, nil
}

// Close releases the underlying connection pool
func (r *RedisSummaryRepository) Close() error {
	return r.client.Close()
}
