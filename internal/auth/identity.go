package auth

import (
	"time"

	"github.com/google/uuid"
)

// Identity is what a session access token says about its holder.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
	// Verified is true when the token signature was checked.
	Verified bool
}
