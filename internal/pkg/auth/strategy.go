package auth

import "time"

// IssuedToken is a freshly signed token together with its validity window.
// ExpiresAt is zero when the strategy issues non-expiring tokens.
type IssuedToken struct {
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Strategy interface {
	IssueToken(userID int64) (IssuedToken, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
