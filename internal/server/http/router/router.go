package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/suopuwu/jwt-pizza-service/internal/config"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/handlers"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PizzaFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	opts := handlers.Options{StrictPayloadStatus: cfg.StrictPayloadStatus}
	authHandler := handlers.NewAuthHandler(facade, opts)
	franchiseHandler := handlers.NewFranchiseHandler(facade, opts)
	orderHandler := handlers.NewOrderHandler(facade, opts)
	healthHandler := handlers.NewHealthHandler(facade, cfg.Version)

	requireAuth := middleware.AuthRequired(facade)
	optionalAuth := middleware.AuthOptional(facade)

	engine.GET("/", healthHandler.Root)
	engine.GET("/healthz", healthHandler.Health)
	engine.NoRoute(handlers.NotFound)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("", authHandler.Register)
	auth.PUT("", authHandler.Login)
	auth.DELETE("", requireAuth, authHandler.Logout)
	auth.PUT("/:id", requireAuth, authHandler.UpdateUser)

	franchise := api.Group("/franchise")
	franchise.GET("", optionalAuth, franchiseHandler.List)
	franchise.GET("/:id", optionalAuth, franchiseHandler.ListForUser)
	franchise.POST("", requireAuth, franchiseHandler.Create)
	franchise.DELETE("/:id", requireAuth, franchiseHandler.Delete)
	franchise.POST("/:id/store", requireAuth, franchiseHandler.CreateStore)
	franchise.DELETE("/:id/store/:storeId", requireAuth, franchiseHandler.DeleteStore)

	order := api.Group("/order")
	order.GET("/menu", orderHandler.Menu)
	order.PUT("/menu", requireAuth, orderHandler.AddMenuItem)
	order.GET("", requireAuth, orderHandler.List)
	order.POST("", requireAuth, orderHandler.Create)

	return engine
}
