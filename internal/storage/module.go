// Package storage selects the persistence backends used by the service.
package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/suopuwu/jwt-pizza-service/internal/config"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
	"github.com/suopuwu/jwt-pizza-service/internal/storage/postgres"
	"github.com/suopuwu/jwt-pizza-service/internal/storage/redis"
)

// Module provides PostgreSQL repositories and the token store, which lives in
// Redis when REDIS_ADDR is configured and in PostgreSQL otherwise.
var Module = fx.Options(
	postgres.Module,
	fx.Provide(newTokenRepository),
)

var newRedisStore = redis.New

type tokenParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Factory   repository.Factory
}

func newTokenRepository(p tokenParams) (repository.TokenRepository, error) {
	if p.Config.RedisAddr == "" {
		p.Logger.Info("token store", slog.String("backend", "postgres"))
		return p.Factory.Tokens(), nil
	}

	store, err := newRedisStore(p.Ctx, redis.Options{
		Addr:     p.Config.RedisAddr,
		Password: p.Config.RedisPassword,
		DB:       p.Config.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	p.Logger.Info("token store", slog.String("backend", "redis"), slog.String("addr", p.Config.RedisAddr))
	return store, nil
}
