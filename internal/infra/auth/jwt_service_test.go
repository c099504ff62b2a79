package auth

import (
	"testing"
	"time"

	"macts/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestService(t)

	signed := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": "user-001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := svc.ValidateToken(signed, testSecret)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-001", claims["sub"])
}

func TestJWTService_ValidateToken_DefaultsToConfiguredSecret(t *testing.T) {
	svc := newTestService(t)

	signed := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": "user-001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := svc.ValidateToken(signed, "")
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	signed := signTestToken(t, "another-secret", jwt.MapClaims{
		"sub": "user-001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestService(t)

	signed := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": "user-001",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(signed, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_ValidateToken_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc := newTestService(t)

	// alg=none style tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-001"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}
