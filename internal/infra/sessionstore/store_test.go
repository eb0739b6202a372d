//go:build unit

package sessionstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtmate-gateway/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedisKV struct {
	lastSetKey string
	lastSetTTL time.Duration
	lastExists []string

	setErr    error
	existsErr error
	existsN   int64
}

func (m *fakeRedisKV) Set(ctx context.Context, key string, _ interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	cmd.SetVal("OK")
	return cmd
}

func (m *fakeRedisKV) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	m.lastExists = keys
	cmd := redis.NewIntCmd(ctx)
	if m.existsErr != nil {
		cmd.SetErr(m.existsErr)
		return cmd
	}
	cmd.SetVal(m.existsN)
	return cmd
}

func TestMemoryStore(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clk)
	ctx := context.Background()
	id := uuid.New()

	revoked, err := store.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, id, time.Hour))
	revoked, err = store.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.True(t, revoked)

	clk.Add(time.Hour)
	revoked, err = store.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.False(t, revoked, "revocation ends with the token lifetime")

	require.NoError(t, store.Revoke(ctx, uuid.Nil, time.Hour))
	require.NoError(t, store.Revoke(ctx, id, 0))
	revoked, _ = store.IsRevoked(ctx, id)
	assert.False(t, revoked)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	id := uuid.MustParse("7d8f1a56-3c1b-4b8e-9a53-1f2e3d4c5b6a")

	t.Run("revoke stores a key with the remaining ttl", func(t *testing.T) {
		kv := &fakeRedisKV{}
		require.NoError(t, NewRedisStore(kv).Revoke(ctx, id, 30*time.Minute))
		assert.Equal(t, "courtmate:session:revoked:7d8f1a56-3c1b-4b8e-9a53-1f2e3d4c5b6a", kv.lastSetKey)
		assert.Equal(t, 30*time.Minute, kv.lastSetTTL)
	})

	t.Run("is revoked reads key existence", func(t *testing.T) {
		kv := &fakeRedisKV{existsN: 1}
		revoked, err := NewRedisStore(kv).IsRevoked(ctx, id)
		require.NoError(t, err)
		assert.True(t, revoked)
		assert.Equal(t, []string{keyPrefix + id.String()}, kv.lastExists)
	})

	t.Run("redis errors are returned", func(t *testing.T) {
		down := errors.New("connection refused")
		kv := &fakeRedisKV{setErr: down, existsErr: down}
		store := NewRedisStore(kv)

		assert.ErrorIs(t, store.Revoke(ctx, id, time.Minute), down)
		_, err := store.IsRevoked(ctx, id)
		assert.ErrorIs(t, err, down)
	})
}
