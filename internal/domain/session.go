package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated session issued by the external auth provider.
type Session struct {
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// IsExpired returns true if the session has expired relative to now.
// A zero ExpiresAt never expires.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Same reports whether o refers to the same user and access token.
func (s *Session) Same(o *Session) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.UserID == o.UserID && s.AccessToken == o.AccessToken
}
