package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"paper-analyzer/internal/domain"
	apperrors "paper-analyzer/pkg/errors"
)

func newTestRepository(t *testing.T) (*RedisSummaryRepository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	repo := NewRedisSummaryRepository(NewRedisClient(srv.Addr(), "", 0), &MockLogger{})
	t.Cleanup(func() { _ = repo.Close() })
	return repo, srv
}

func TestRedisSummaryRepository_StoreSetsSessionKey(t *testing.T) {
	repo, srv := newTestRepository(t)

	err := repo.Store(context.Background(), "abc123", "Hello World Again")

	require.NoError(t, err)
	got, err := srv.Get("summary:abc123")
	require.NoError(t, err)
	require.Equal(t, "Hello World Again", got)
	require.Zero(t, srv.TTL("summary:abc123"), "summary must not expire")
}

func TestRedisSummaryRepository_StoreOverwrites(t *testing.T) {
	repo, srv := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "abc123", "first"))
	require.NoError(t, repo.Store(ctx, "abc123", "second"))

	got, _ := srv.Get("summary:abc123")
	require.Equal(t, "second", got)
}

func TestRedisSummaryRepository_StoreEmptyValue(t *testing.T) {
	repo, srv := newTestRepository(t)

	require.NoError(t, repo.Store(context.Background(), "blank", ""))

	require.True(t, srv.Exists("summary:blank"))
	got, _ := srv.Get("summary:blank")
	require.Equal(t, "", got)
}

func TestRedisSummaryRepository_Retrieve(t *testing.T) {
	repo, srv := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Retrieve(ctx, "pending")
	require.ErrorIs(t, err, domain.ErrSummaryNotFound)

	require.NoError(t, srv.Set("summary:ready", strings.Repeat("a", 1000)+"..."))
	got, err := repo.Retrieve(ctx, "ready")
	require.NoError(t, err)
	require.Len(t, got, 1003)
}

func TestRedisSummaryRepository_UnreachableStore(t *testing.T) {
	repo, srv := newTestRepository(t)
	srv.Close()

	err := repo.Store(context.Background(), "abc123", "text")

	require.Error(t, err)
	require.True(t, apperrors.IsType(err, apperrors.ErrorTypeStore))
	require.Equal(t, apperrors.ExitStore, apperrors.GetExitCode(err))
}

func TestRedisSummaryRepository_StoreRejected(t *testing.T) {
	repo, srv := newTestRepository(t)
	srv.SetError("READONLY You can't write against a read only replica.")

	err := repo.Store(context.Background(), "abc123", "text")

	require.True(t, apperrors.IsType(err, apperrors.ErrorTypeStore))
}
