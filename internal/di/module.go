package di

import (
	"go.uber.org/fx"

	"github.com/suopuwu/jwt-pizza-service/internal/adapter/factory"
	"github.com/suopuwu/jwt-pizza-service/internal/app"
	"github.com/suopuwu/jwt-pizza-service/internal/config"
	"github.com/suopuwu/jwt-pizza-service/internal/logger"
	"github.com/suopuwu/jwt-pizza-service/internal/pkg/auth"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/handlers"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/router"
	"github.com/suopuwu/jwt-pizza-service/internal/storage"
	"github.com/suopuwu/jwt-pizza-service/internal/storage/postgres"
	"github.com/suopuwu/jwt-pizza-service/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		factory.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.PizzaFacade) handlers.PizzaFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
