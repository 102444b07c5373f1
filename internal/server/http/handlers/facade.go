package handlers

import (
	"context"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/middleware"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
	UpdateUser(ctx context.Context, actor *model.User, userID int64, email, password string) (*model.User, error)
}

// FranchiseFacade encapsulates franchise and store operations exposed via HTTP.
type FranchiseFacade interface {
	Franchises(ctx context.Context, actor *model.User) ([]model.Franchise, error)
	UserFranchises(ctx context.Context, actor *model.User, userID int64) ([]model.Franchise, error)
	CreateFranchise(ctx context.Context, actor *model.User, name string, adminEmails []string) (*model.Franchise, error)
	DeleteFranchise(ctx context.Context, actor *model.User, franchiseID int64) error
	CreateStore(ctx context.Context, actor *model.User, franchiseID int64, name string) (*model.Store, error)
	DeleteStore(ctx context.Context, actor *model.User, franchiseID, storeID int64) error
}

// OrderFacade provides menu and order operations.
type OrderFacade interface {
	Menu(ctx context.Context) ([]model.MenuItem, error)
	AddMenuItem(ctx context.Context, actor *model.User, item model.MenuItem) ([]model.MenuItem, error)
	Orders(ctx context.Context, actor *model.User, page int) (*model.OrderPage, error)
	CreateOrder(ctx context.Context, actor *model.User, order model.Order) (*model.Receipt, error)
}

// HealthFacade reports backing service availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// PizzaFacade aggregates the full set of operations used across handlers.
type PizzaFacade interface {
	middleware.Authenticator
	AuthFacade
	FranchiseFacade
	OrderFacade
	HealthFacade
}
