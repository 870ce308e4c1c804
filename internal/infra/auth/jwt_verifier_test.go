package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insulink/config"
)

const testSecret = "test-access-secret"

func newTestVerifier(t *testing.T) *jwtVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	v, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	return v.(*jwtVerifier)
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)
}

func TestVerifyAccessToken_Valid(t *testing.T) {
	v := newTestVerifier(t)
	userID := uuid.New()

	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":  userID.String(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "access",
	})

	claims, err := v.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
}

func TestVerifyAccessToken_Rejects(t *testing.T) {
	v := newTestVerifier(t)
	userID := uuid.New().String()
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "wrong secret",
			token: sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": userID, "exp": future}),
		},
		{
			name:  "expired",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": userID, "exp": time.Now().Add(-time.Hour).Unix()}),
		},
		{
			name:  "missing expiry",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": userID}),
		},
		{
			name:  "refresh token",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": userID, "exp": future, "type": "refresh"}),
		},
		{
			name:  "subject is not a uuid",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "alice", "exp": future}),
		},
		{
			name:  "other algorithm",
			token: sign(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"sub": userID, "exp": future}),
		},
		{
			name:  "garbage",
			token: "not-a-jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.VerifyAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
