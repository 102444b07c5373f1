// Package redis keeps the valid-token record in Redis. Sessions are hashes
// keyed by token signature and expire natively at the token's expiry.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

const keyPrefix = "session:"

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// TokenStore implements repository.TokenRepository on top of Redis.
type TokenStore struct {
	client *goredis.Client
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, opts Options) (*TokenStore, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *goredis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Close releases the client.
func (s *TokenStore) Close() error {
	return s.client.Close()
}

func (s *TokenStore) Save(ctx context.Context, session model.Session) error {
	key := keyPrefix + session.Signature
	var expires int64
	if !session.ExpiresAt.IsZero() {
		expires = session.ExpiresAt.UnixNano()
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"user_id", session.UserID,
			"issued_at", session.IssuedAt.UnixNano(),
			"expires_at", expires,
		)
		if expires != 0 {
			pipe.ExpireAt(ctx, key, session.ExpiresAt)
		}
		return nil
	})
	return err
}

func (s *TokenStore) Lookup(ctx context.Context, signature string) (*model.Session, error) {
	vals, err := s.client.HGetAll(ctx, keyPrefix+signature).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, domainErrors.ErrNotFound
	}

	userID, err := strconv.ParseInt(vals["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	session := &model.Session{Signature: signature, UserID: userID}
	if n, err := strconv.ParseInt(vals["issued_at"], 10, 64); err == nil {
		session.IssuedAt = time.Unix(0, n)
	}
	if n, err := strconv.ParseInt(vals["expires_at"], 10, 64); err == nil && n != 0 {
		session.ExpiresAt = time.Unix(0, n)
	}
	return session, nil
}

func (s *TokenStore) Delete(ctx context.Context, signature string) error {
	return s.client.Del(ctx, keyPrefix+signature).Err()
}

// PurgeExpired is a no-op; Redis evicts expired sessions itself.
func (s *TokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

// HealthCheck pings Redis.
func (s *TokenStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
