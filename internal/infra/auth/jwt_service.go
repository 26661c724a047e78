// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"profilesync/config"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
)

const tokenTypeAccess = "access"

// jwtService validates HS256 access tokens minted by the identity service
// that shares secretKey.access with this API.
type jwtService struct {
	accessSecret string
}

type accessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// ValidateToken checks the signature, expiry and subject of an access token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	if claims.Type != tokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
