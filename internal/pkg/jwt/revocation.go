package jwt

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// RevocationStore remembers revoked tokens until they would have expired
// anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) bool
}

const revocationKeyPrefix = "revoked_token:"

type redisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore backs revocation with Redis so it survives
// restarts and is shared across instances. The key TTL matches the token's
// remaining lifetime, so the set prunes itself.
func NewRedisRevocationStore(client *redis.Client) RevocationStore {
	return &redisRevocationStore{client: client}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, revocationKeyPrefix+token, "1", ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, token string) bool {
	n, err := s.client.Exists(ctx, revocationKeyPrefix+token).Result()
	if err != nil {
		// A Redis outage should not lock every principal out; the token
		// still carries a valid signature and expiry.
		slog.Error("failed to check token revocation", "error", err)
		return false
	}
	return n > 0
}

type memoryRevocationStore struct {
	mu      sync.RWMutex
	expires map[string]time.Time
}

// NewMemoryRevocationStore keeps revocations in process memory. Single
// instance only; tests use it so they need no Redis.
func NewMemoryRevocationStore() RevocationStore {
	return &memoryRevocationStore{expires: make(map[string]time.Time)}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for t, exp := range s.expires {
		if exp.Before(now) {
			delete(s.expires, t)
		}
	}

	s.expires[token] = now.Add(ttl)
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.expires[token]
	return ok && exp.After(time.Now())
}
