package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "ravi", RoleStaff)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), expiresAt, time.Minute)

	user, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
	assert.Equal(t, "ravi", user.Username)
	assert.Equal(t, RoleStaff, user.Role)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("secret-a"))
	other := NewJWTService(DefaultJWTConfig("secret-b"))

	token, _, err := svc.GenerateAccessToken("user-1", "ravi", RoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWT_RejectsExpired(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -time.Minute
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateAccessToken("user-1", "ravi", RoleManager)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
