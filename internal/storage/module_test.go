package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/fx/fxtest"

	"github.com/suopuwu/jwt-pizza-service/internal/config"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
	"github.com/suopuwu/jwt-pizza-service/internal/storage/redis"
	testhelpers "github.com/suopuwu/jwt-pizza-service/internal/test"
)

type factoryStub struct {
	tokens repository.TokenRepository
}

func (f factoryStub) Users() repository.UserRepository           { return nil }
func (f factoryStub) Tokens() repository.TokenRepository         { return f.tokens }
func (f factoryStub) Franchises() repository.FranchiseRepository { return nil }
func (f factoryStub) Menu() repository.MenuRepository            { return nil }
func (f factoryStub) Orders() repository.OrderRepository         { return nil }

func newParams(t *testing.T, cfg *config.Config) (tokenParams, *fxtest.Lifecycle, *testhelpers.TokenRepositoryStub) {
	t.Helper()
	lc := fxtest.NewLifecycle(t)
	tokens := testhelpers.NewTokenRepositoryStub()
	return tokenParams{
		Ctx:       context.Background(),
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Factory:   factoryStub{tokens: tokens},
	}, lc, tokens
}

func TestNewTokenRepositoryDefaultsToPostgres(t *testing.T) {
	p, _, tokens := newParams(t, &config.Config{})
	repo, err := newTokenRepository(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo != tokens {
		t.Fatalf("expected factory token repository, got %T", repo)
	}
}

func TestNewTokenRepositoryUsesRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	p, lc, _ := newParams(t, &config.Config{RedisAddr: srv.Addr()})

	repo, err := newTokenRepository(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.(*redis.TokenStore); !ok {
		t.Fatalf("expected redis token store, got %T", repo)
	}

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewTokenRepositoryRedisError(t *testing.T) {
	t.Cleanup(func() { newRedisStore = redis.New })
	newRedisStore = func(context.Context, redis.Options) (*redis.TokenStore, error) {
		return nil, errors.New("unreachable")
	}

	p, _, _ := newParams(t, &config.Config{RedisAddr: "127.0.0.1:1"})
	if _, err := newTokenRepository(p); err == nil {
		t.Fatal("expected error")
	}
}
