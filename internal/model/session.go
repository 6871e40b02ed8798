package model

import (
	"context"
	"time"
)

// DefaultSessionTTL is the lifetime of a login session.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore persists login sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	GetByToken(ctx context.Context, token string) (Session, error)
	// Deactivate soft-revokes the session. Unknown tokens yield ErrNotFound.
	Deactivate(ctx context.Context, token string) error
	// PurgeExpired removes sessions whose expiry is before now and returns how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// Session is a login session identified by an opaque random token.
// UserID is a weak reference: a deleted user leaves the session dangling.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsActive  bool      `json:"isActive"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	User         UserView `json:"user"`
	SessionToken string   `json:"sessionToken"`
}

// SessionInfo is returned for a valid session.
type SessionInfo struct {
	User    UserView `json:"user"`
	Session Session  `json:"session"`
}
