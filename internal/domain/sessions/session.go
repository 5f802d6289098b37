// Package sessions models server-side login sessions. A session exists for every
// browser, anonymous until a user logs in, and carries the CSRF token of its forms.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/pkg/validators"
)

var (
	// ErrSessionNotFound is returned when the session id is unknown or revoked.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when the session is past its expiry.
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidToken is returned when the cookie token fails verification.
	ErrInvalidToken = errors.New("invalid session token")
)

// Session entity
type Session struct {
	ID        string    `validate:"required,uuid4"`
	UserID    *int      `validate:"omitempty,min=1"`
	CSRFToken string    `validate:"required,hexadecimal,len=64"`
	CreatedAt time.Time `validate:"required"`
	ExpiresAt time.Time `validate:"required,gtfield=CreatedAt"`
}

// Validate for validating Session struct
func (s *Session) Validate() error {
	return validators.Struct(s)
}

// IsAuthenticated reports whether a user is logged in on the session.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != nil
}

// IsExpired reports whether the session has expired at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionService manages the lifecycle of sessions.
type SessionService interface {
	// Start creates a new anonymous session.
	Start(ctx context.Context) (*Session, error)

	// Resolve verifies a cookie token and returns the live session it refers to.
	Resolve(ctx context.Context, token string) (*Session, error)

	// Login replaces current with a fresh session bound to userID.
	Login(ctx context.Context, current *Session, userID int) (*Session, error)

	// Logout revokes current and returns a fresh anonymous session.
	Logout(ctx context.Context, current *Session) (*Session, error)

	// Token returns the signed cookie value for a session.
	Token(session *Session) (string, error)

	// PurgeExpired deletes expired sessions and returns how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionRepository defines the interface for Session-related persistence operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	DeleteByID(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenSigner signs and verifies the cookie value identifying a session.
type TokenSigner interface {
	Sign(sessionID string, expiresAt time.Time) (string, error)
	// Verify returns the session id carried by a valid token or ErrInvalidToken.
	Verify(token string) (string, error)
}
