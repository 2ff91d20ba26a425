// Package jwt issues and verifies the signed session tokens carried in the
// x-auth-token header.
package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTTL is the token lifetime used when none is configured
	DefaultTTL = time.Hour

	issuer = "devsocial"
)

var (
	// ErrMalformed covers bad encoding, bad signature, wrong algorithm and missing claims
	ErrMalformed = errors.New("token is malformed")

	// ErrExpired indicates that the token lifetime is over
	ErrExpired = errors.New("token is expired")
)

// UserClaim identifies the token holder
type UserClaim struct {
	ID string `json:"id"`
}

// Claims represents JWT claims: {"user":{"id":...}} plus registered claims
type Claims struct {
	User UserClaim `json:"user"`
	gojwt.RegisteredClaims
}

// Service provides JWT token generation and validation
type Service struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewService creates a new JWT service
// secret should be a cryptographically secure random string
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for userID. Returns the token and its lifetime in seconds
func (s *Service) Issue(userID string) (string, int64, error) {
	if userID == "" {
		return "", 0, fmt.Errorf("failed to issue token: empty user id")
	}

	now := s.now()

	claims := Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  gojwt.NewNumericDate(now),
			NotBefore: gojwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(s.ttl.Seconds()), nil
}

// Verify checks signature and lifetime and returns the user id from the token
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	_, err := gojwt.ParseWithClaims(tokenString, claims, func(token *gojwt.Token) (any, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(issuer),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if claims.User.ID == "" {
		return "", fmt.Errorf("%w: missing user id", ErrMalformed)
	}

	return claims.User.ID, nil
}
