package model

import "time"

// Session is an entry of the valid-token record. Tokens are tracked by their
// signature segment; the zero ExpiresAt means the session never expires.
type Session struct {
	Signature string
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
