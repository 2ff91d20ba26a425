package storage

import (
	"context"
	"time"
)

// SessionStorage stores the current login on the client
type SessionStorage interface {
	// SaveSession replaces the stored session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession returns ErrSessionNotFound if nobody is logged in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the session (logout)
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks that a session exists and its token has not expired
	IsAuthenticated(ctx context.Context) (bool, error)
}

// Session represents the logged in user
type Session struct {
	Server    string `json:"server"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Token     string `json:"token"` // отправляется в x-auth-token
	ExpiresAt int64  `json:"expires_at"`
}

// Expired reports whether the token is past its expiry
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt != 0 && !now.Before(time.Unix(s.ExpiresAt, 0))
}
