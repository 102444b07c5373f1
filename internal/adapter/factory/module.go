package factory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/suopuwu/jwt-pizza-service/internal/config"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
)

// Module exposes the pizza factory client to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (repository.Fulfiller, error) {
	if p.Config.FactoryURL == "" {
		p.Logger.Warn("pizza factory not configured, orders will not be fulfilled")
		return Disabled{}, nil
	}
	return NewHTTPClient(p.Config.FactoryURL, p.Config.FactoryAPIKey, p.Logger)
}
