package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"organizame.app/api/core/config"
)

var ErrInvalidToken = errors.New("invalid token")

// AuthService validates bearer tokens issued by the identity provider and
// extracts the owner uid that scopes all data access.
type AuthService interface {
	VerifyToken(tokenString string) (string, error)
}

type authService struct {
	secret   []byte
	audience string
}

func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authService{
		secret:   []byte(cfg.Secret),
		audience: cfg.Audience,
	}
}

// VerifyToken checks the token signature, expiry and audience and returns
// the subject claim as the owner uid.
func (s *authService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}
