package test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	pkgAuth "github.com/suopuwu/jwt-pizza-service/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

var tokenSeq atomic.Int64

// StubToken builds a well-formed three segment token for userID with the
// given signature segment.
func StubToken(userID int64, signature string) string {
	return fmt.Sprintf("stub.%d.%s", userID, signature)
}

// StrategyStub issues and parses tokens via function overrides. By default it
// issues unique tokens of the form stub.<userID>.<seq> without expiry.
type StrategyStub struct {
	IssueFn func(int64) (pkgAuth.IssuedToken, error)
	ParseFn func(string) (int64, error)
	TTL     time.Duration
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (pkgAuth.IssuedToken, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	now := time.Now()
	issued := pkgAuth.IssuedToken{
		Value:    StubToken(userID, "sig"+strconv.FormatInt(tokenSeq.Add(1), 10)),
		IssuedAt: now,
	}
	if s.TTL != 0 {
		issued.ExpiresAt = now.Add(s.TTL)
	}
	return issued, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] != "stub" {
		return 0, pkgAuth.ErrInvalidToken
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, pkgAuth.ErrInvalidToken
	}
	return id, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
