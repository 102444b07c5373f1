package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/suopuwu/jwt-pizza-service/internal/config"
	"github.com/suopuwu/jwt-pizza-service/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewPizzaFacade,
		newHTTPServer,
		newSessionSweeper,
		provideAdminBootstrapper,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *PizzaFacade
	Config *config.Config
	Logger *slog.Logger
}

func newSessionSweeper(p workerParams) *worker.SessionSweeper {
	return worker.NewSessionSweeper(p.Facade, p.Config.SweepInterval, p.Logger)
}

// AdminBootstrapper creates the configured administrator account.
type AdminBootstrapper interface {
	BootstrapAdmin(ctx context.Context, name, email, password string) (bool, error)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.SessionSweeper
	Admin      AdminBootstrapper
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := p.Admin.BootstrapAdmin(ctx, p.Config.AdminName, p.Config.AdminEmail, p.Config.AdminPassword)
			if err != nil {
				return err
			}
			if created {
				p.Logger.Info("default admin created", slog.String("email", p.Config.AdminEmail))
			}

			p.Logger.Info("starting jwt pizza service",
				slog.String("addr", p.Server.Addr),
				slog.String("version", p.Config.Version),
			)
			// fx cancels the start context once OnStart returns.
			p.Worker.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("jwt pizza service stopped")
			return nil
		},
	})
}

func provideAdminBootstrapper(f *PizzaFacade) AdminBootstrapper {
	return f
}
