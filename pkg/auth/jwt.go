package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: malformed, bad
// signature, expired. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies stateless bearer tokens. There is no
// server-side revocation; a token stays valid until its expiry.
type TokenService interface {
	Generate(accountID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a TokenService signing HS256 tokens with the
// given secret. A non-positive ttl falls back to seven days.
func NewJWTService(secret string, ttl time.Duration) TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &jwtService{secret: []byte(secret), ttl: ttl}
}

func (s *jwtService) Generate(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *jwtService) Verify(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return accountID, nil
}
