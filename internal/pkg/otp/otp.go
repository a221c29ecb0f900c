package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound means no code is pending for the email, or it expired.
var ErrNotFound = errors.New("no pending OTP for this email")

const (
	codeDigits = 6
	keyPrefix  = "otp:"
)

// Store keeps one-time codes in Redis with a TTL, so expiry needs no
// sweeper and restarts do not leak pending resets.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Issue generates a fresh 6-digit code for the email, replacing any code
// already pending, and returns it for delivery.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+email, code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}

	return code, nil
}

// Verify checks the code and consumes it on success. A wrong code leaves
// the pending one in place until its TTL runs out.
func (s *Store) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.Get(ctx, keyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read OTP: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	if err := s.client.Del(ctx, keyPrefix+email).Err(); err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}

	return true, nil
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
