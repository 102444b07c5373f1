// Command pizza-service runs the JWT Pizza HTTP API.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/suopuwu/jwt-pizza-service/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		fx.StartTimeout(startTimeout),
		di.Module(),
	)

	run(ctx, app)
}
