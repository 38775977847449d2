package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates access tokens issued by the external identity service.
// This system never issues tokens, it only verifies them.
type TokenService interface {
	// ValidateToken checks signature and expiry of a token string.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
