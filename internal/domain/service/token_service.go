package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims this service reads from an access token.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenVerifier validates access tokens issued by the external identity service.
// Token issuance lives there; this service only verifies.
type TokenVerifier interface {
	// VerifyAccessToken checks signature, expiry and token type, and returns the claims.
	VerifyAccessToken(tokenString string) (*Claims, error)
}
