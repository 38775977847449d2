// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"atlas/config"
	"atlas/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are issued by the external identity service; this side only verifies them.
type jwtService struct {
	accessSecret string // Secret key shared with the identity service.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// ValidateToken checks the validity of a token string against a secret.
// An empty secret falls back to the configured access secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	if secret == "" {
		secret = s.accessSecret
	}

	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
}
