package app

import (
	"context"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
	"github.com/suopuwu/jwt-pizza-service/internal/usecase"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type PizzaFacade struct {
	auth       *usecase.AuthUseCase
	franchises *usecase.FranchiseUseCase
	orders     *usecase.OrderUseCase
	tokens     *usecase.TokenService
	db         HealthChecker
	tokenStore repository.TokenRepository
}

func NewPizzaFacade(
	auth *usecase.AuthUseCase,
	franchises *usecase.FranchiseUseCase,
	orders *usecase.OrderUseCase,
	tokens *usecase.TokenService,
	db HealthChecker,
	tokenStore repository.TokenRepository,
) *PizzaFacade {
	return &PizzaFacade{
		auth:       auth,
		franchises: franchises,
		orders:     orders,
		tokens:     tokens,
		db:         db,
		tokenStore: tokenStore,
	}
}

func (f *PizzaFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *PizzaFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *PizzaFacade) Logout(ctx context.Context, token string) error {
	return f.auth.Logout(ctx, token)
}

func (f *PizzaFacade) Authenticate(ctx context.Context, token string) (*model.User, error) {
	return f.auth.Authenticate(ctx, token)
}

func (f *PizzaFacade) UpdateUser(ctx context.Context, actor *model.User, userID int64, email, password string) (*model.User, error) {
	return f.auth.UpdateUser(ctx, actor, userID, email, password)
}

func (f *PizzaFacade) BootstrapAdmin(ctx context.Context, name, email, password string) (bool, error) {
	return f.auth.BootstrapAdmin(ctx, name, email, password)
}

func (f *PizzaFacade) Franchises(ctx context.Context, actor *model.User) ([]model.Franchise, error) {
	return f.franchises.List(ctx, actor)
}

func (f *PizzaFacade) UserFranchises(ctx context.Context, actor *model.User, userID int64) ([]model.Franchise, error) {
	return f.franchises.ListForUser(ctx, actor, userID)
}

func (f *PizzaFacade) CreateFranchise(ctx context.Context, actor *model.User, name string, adminEmails []string) (*model.Franchise, error) {
	return f.franchises.Create(ctx, actor, name, adminEmails)
}

func (f *PizzaFacade) DeleteFranchise(ctx context.Context, actor *model.User, franchiseID int64) error {
	return f.franchises.Delete(ctx, actor, franchiseID)
}

func (f *PizzaFacade) CreateStore(ctx context.Context, actor *model.User, franchiseID int64, name string) (*model.Store, error) {
	return f.franchises.CreateStore(ctx, actor, franchiseID, name)
}

func (f *PizzaFacade) DeleteStore(ctx context.Context, actor *model.User, franchiseID, storeID int64) error {
	return f.franchises.DeleteStore(ctx, actor, franchiseID, storeID)
}

func (f *PizzaFacade) Menu(ctx context.Context) ([]model.MenuItem, error) {
	return f.orders.Menu(ctx)
}

func (f *PizzaFacade) AddMenuItem(ctx context.Context, actor *model.User, item model.MenuItem) ([]model.MenuItem, error) {
	return f.orders.AddMenuItem(ctx, actor, item)
}

func (f *PizzaFacade) Orders(ctx context.Context, actor *model.User, page int) (*model.OrderPage, error) {
	return f.orders.Orders(ctx, actor, page)
}

func (f *PizzaFacade) CreateOrder(ctx context.Context, actor *model.User, order model.Order) (*model.Receipt, error) {
	return f.orders.Create(ctx, actor, order)
}

func (f *PizzaFacade) SweepSessions(ctx context.Context) (int64, error) {
	return f.tokens.Sweep(ctx)
}

// HealthCheck verifies the database and, when it is a separate service, the token store.
func (f *PizzaFacade) HealthCheck(ctx context.Context) error {
	if err := f.db.HealthCheck(ctx); err != nil {
		return err
	}
	if hc, ok := f.tokenStore.(HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}
