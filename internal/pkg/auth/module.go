package auth

import (
	"log/slog"

	"github.com/suopuwu/jwt-pizza-service/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPasswordHasher(p strategyParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

func newTokenStrategy(p strategyParams) Strategy {
	strategy := NewJWTStrategy(p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL})
	p.Logger.Info("token strategy", slog.String("strategy", strategy.Name()), slog.Duration("ttl", p.Config.TokenTTL))
	return strategy
}
