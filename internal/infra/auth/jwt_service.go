// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"postboard/config"
	"postboard/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Shared secret for HMAC signing, injected from config.
	ttl    time.Duration // Time-to-live stamped into each issued token.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.Auth.Secret,
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed HS256 token asserting the subject email.
// The expiry is fixed at issuance: there is no revocation, so the token stays
// valid until the stamped instant regardless of later events.
func (s *jwtService) Issue(subjectEmail string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subjectEmail,            // Subject (who the token is for)
		"iat": now.Unix(),              // Issued At
		"exp": now.Add(s.ttl).Unix(),   // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the token's signature, structure and expiry and returns the
// subject email. Every failure collapses into service.ErrInvalidToken so the
// caller cannot distinguish a forged token from an expired one.
func (s *jwtService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", service.ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", service.ErrInvalidToken
	}

	return subject, nil
}
