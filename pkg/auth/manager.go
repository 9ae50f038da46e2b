package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/vibe-gaming/waitlist/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager provides logic for admin session token generation and parsing.
type TokenManager interface {
	NewJWT(subject string) (string, time.Duration, error)
	Parse(accessToken string) (string, error)
}

type Manager struct {
	signingKey string
	sessionTTL time.Duration
	now        func() time.Time
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.SessionTTL <= 0 {
		return nil, errors.New("empty session ttl")
	}

	return &Manager{
		signingKey: cfg.SigningKey,
		sessionTTL: cfg.SessionTTL,
		now:        time.Now,
	}, nil
}

func (m *Manager) NewJWT(subject string) (string, time.Duration, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
		Subject:   subject,
	})

	accessToken, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", 0, errors.New("sign jwt failed")
	}

	return accessToken, m.sessionTTL, nil
}

func (m *Manager) Parse(accessToken string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (i interface{}, err error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}
