package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for caller access tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService validates the bearer tokens callers present to the API.
// Tokens are issued by an external identity service.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
