// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"insulink/config"
	"insulink/internal/domain/service"
)

const (
	accessTokenType = "access"
	clockLeeway     = 30 * time.Second
)

var (
	// ErrInvalidToken is returned for any token that fails verification.
	ErrInvalidToken = errors.New("invalid access token")
)

// accessClaims mirrors the claims written by the identity service.
type accessClaims struct {
	Type string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier is a concrete implementation of the TokenVerifier interface for HS256 JWTs.
type jwtVerifier struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("access token secret must be provided")
	}

	return &jwtVerifier{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockLeeway),
		),
	}, nil
}

// VerifyAccessToken parses the token and maps its "sub" claim to the user id.
func (v *jwtVerifier) VerifyAccessToken(tokenString string) (*service.Claims, error) {
	var claims accessClaims
	if _, err := v.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.accessSecret, nil
	}); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	// Tokens without a type are accepted for identity services that do not set one.
	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a user id")
	}

	return &service.Claims{
		UserID:           userID,
		Type:             claims.Type,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
