package sessionstore

import (
	"context"
	"sync"
	"time"

	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "courtmate:session:revoked:"

// RevocationStore remembers logged-out session ids until their token would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

type memoryStore struct {
	mu    sync.Mutex
	clock clock.Clock
	items map[uuid.UUID]time.Time
}

func NewMemoryStore(clk clock.Clock) RevocationStore {
	return &memoryStore{
		clock: clk,
		items: make(map[uuid.UUID]time.Time),
	}
}

func (s *memoryStore) Revoke(_ context.Context, sessionID uuid.UUID, ttl time.Duration) error {
	if sessionID == uuid.Nil || ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	s.sweep(now)
	s.items[sessionID] = now.Add(ttl)
	return nil
}

func (s *memoryStore) IsRevoked(_ context.Context, sessionID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.items[sessionID]
	if !ok {
		return false, nil
	}
	if !s.clock.Now().Before(exp) {
		delete(s.items, sessionID)
		return false, nil
	}
	return true, nil
}

// caller holds mu
func (s *memoryStore) sweep(now time.Time) {
	for id, exp := range s.items {
		if !now.Before(exp) {
			delete(s.items, id)
		}
	}
}

// kvClient is the subset of *redis.Client the store uses.
type kvClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisStore struct {
	client  kvClient
	timeout time.Duration
}

func NewRedisStore(client kvClient) RevocationStore {
	return &redisStore{
		client:  client,
		timeout: 500 * time.Millisecond,
	}
}

func (s *redisStore) Revoke(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) error {
	if sessionID == uuid.Nil || ttl <= 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Set(ctx, keyPrefix+sessionID.String(), "1", ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store session revocation")
	}
	return nil
}

func (s *redisStore) IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	n, err := s.client.Exists(ctx, keyPrefix+sessionID.String()).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to check session revocation")
	}
	return n > 0, nil
}
