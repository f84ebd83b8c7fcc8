package jwt

import (
	"testing"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("owner-1", user.RoleOwner)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	caller, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.Caller{ID: "owner-1", Role: user.RoleOwner}, caller)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("other-secret", "1h")
	verifier := NewJWTService("test-secret", "1h")

	token, _, err := issuer.GenerateAccessToken("owner-1", user.RoleOwner)
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "1m").(*JWTService)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.GenerateAccessToken("manager-1", user.RoleManager)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")

	_, _, err := svc.GenerateAccessToken("manager-1", user.RoleManager)
	assert.Error(t, err)
}

func TestCallerFromClaims(t *testing.T) {
	caller, err := CallerFromClaims(map[string]interface{}{"type": "access", "user_id": "u1", "role": "manager"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, caller.Role)

	_, err = CallerFromClaims(map[string]interface{}{"type": "refresh", "user_id": "u1", "role": "manager"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = CallerFromClaims(map[string]interface{}{"type": "access", "role": "manager"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
