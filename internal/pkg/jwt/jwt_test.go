package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emscore/ems-backend-go/internal/domain/auth"
)

func newTestService() Service {
	return NewJWTService("test-secret", "15m", "168h", NewMemoryRevocationStore())
}

func testClaims() PrincipalClaims {
	employeeID := "EMP001"
	return PrincipalClaims{
		SubjectID:  "login-1",
		Email:      "ravi@example.com",
		Name:       "Ravi Kumar",
		Role:       auth.RoleEmployee,
		EmployeeID: &employeeID,
	}
}

func TestRevokeTokenBlocksIt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	token, _, err := svc.GenerateAccessToken(testClaims())
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(ctx, token))
	require.NoError(t, svc.RevokeToken(ctx, token))
	assert.True(t, svc.IsTokenRevoked(ctx, token))

	// Revocation is per token, not per subject.
	other, _, err := svc.GenerateRefreshToken(testClaims())
	require.NoError(t, err)
	assert.False(t, svc.IsTokenRevoked(ctx, other))
}

func TestRevokeTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()

	require.Error(t, svc.RevokeToken(context.Background(), "not-a-token"))
}

func TestParseRefreshTokenRejectsRevoked(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	token, _, err := svc.GenerateRefreshToken(testClaims())
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, token))

	_, err = svc.ParseRefreshToken(ctx, token)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestMemoryRevocationStoreForgetsExpired(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "short-lived", 10*time.Millisecond))
	assert.True(t, store.IsRevoked(ctx, "short-lived"))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, store.IsRevoked(ctx, "short-lived"))

	// The next Revoke sweeps the dead entry out of the map.
	require.NoError(t, store.Revoke(ctx, "other", time.Minute))
	mem := store.(*memoryRevocationStore)
	mem.mu.RLock()
	_, stillThere := mem.expires["short-lived"]
	mem.mu.RUnlock()
	assert.False(t, stillThere)
}
