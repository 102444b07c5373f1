package test

import (
	"context"
	"sync/atomic"
	"time"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

// Diner is the user AuthFacadeStub resolves tokens to by default.
func Diner() *model.User {
	return &model.User{ID: 2, Name: "pizza diner", Email: "d@jwt.com", Roles: []model.Role{{Kind: model.RoleDiner}}}
}

// Admin returns an administrator account.
func Admin() *model.User {
	return &model.User{ID: 1, Name: "常用名字", Email: "a@jwt.com", Roles: []model.Role{{Kind: model.RoleAdmin}}}
}

// AuthFacadeStub provides controllable behaviour for auth endpoints and middleware.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	LoginFn        func(context.Context, string, string) (*model.User, string, error)
	LogoutFn       func(context.Context, string) error
	AuthenticateFn func(context.Context, string) (*model.User, error)
	UpdateUserFn   func(context.Context, *model.User, int64, string, string) (*model.User, error)

	// Tokens maps tokens to users when AuthenticateFn is nil. A nil map accepts any non-empty token as Diner.
	Tokens map[string]*model.User
}

// Register delegates to RegisterFn or echoes a diner with a fixed token.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: 3, Name: name, Email: email, Roles: []model.Role{{Kind: model.RoleDiner}}}, "token", nil
}

// Login delegates to LoginFn or returns Diner.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	user := Diner()
	user.Email = email
	return user, "token", nil
}

// Logout delegates to LogoutFn.
func (s AuthFacadeStub) Logout(ctx context.Context, token string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, token)
	}
	return nil
}

// Authenticate resolves token via AuthenticateFn or Tokens.
func (s AuthFacadeStub) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, token)
	}
	if s.Tokens == nil {
		if token == "" {
			return nil, domainErrors.ErrUnauthenticated
		}
		return Diner(), nil
	}
	user, ok := s.Tokens[token]
	if !ok {
		return nil, domainErrors.ErrUnauthenticated
	}
	return user, nil
}

// UpdateUser delegates to UpdateUserFn or applies the new email to a copy of actor.
func (s AuthFacadeStub) UpdateUser(ctx context.Context, actor *model.User, userID int64, email, password string) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, actor, userID, email, password)
	}
	updated := *actor
	updated.ID = userID
	if email != "" {
		updated.Email = email
	}
	return &updated, nil
}

// FranchiseFacadeStub simulates franchise operations.
type FranchiseFacadeStub struct {
	FranchisesFn      func(context.Context, *model.User) ([]model.Franchise, error)
	UserFranchisesFn  func(context.Context, *model.User, int64) ([]model.Franchise, error)
	CreateFranchiseFn func(context.Context, *model.User, string, []string) (*model.Franchise, error)
	DeleteFranchiseFn func(context.Context, *model.User, int64) error
	CreateStoreFn     func(context.Context, *model.User, int64, string) (*model.Store, error)
	DeleteStoreFn     func(context.Context, *model.User, int64, int64) error
}

// Franchises returns configured franchises or a single default one.
func (s FranchiseFacadeStub) Franchises(ctx context.Context, actor *model.User) ([]model.Franchise, error) {
	if s.FranchisesFn != nil {
		return s.FranchisesFn(ctx, actor)
	}
	return []model.Franchise{{ID: 1, Name: "pizzaPocket", Stores: []model.Store{{ID: 1, FranchiseID: 1, Name: "SLC"}}}}, nil
}

// UserFranchises returns franchises administered by userID.
func (s FranchiseFacadeStub) UserFranchises(ctx context.Context, actor *model.User, userID int64) ([]model.Franchise, error) {
	if s.UserFranchisesFn != nil {
		return s.UserFranchisesFn(ctx, actor, userID)
	}
	return []model.Franchise{}, nil
}

// CreateFranchise echoes the requested franchise.
func (s FranchiseFacadeStub) CreateFranchise(ctx context.Context, actor *model.User, name string, adminEmails []string) (*model.Franchise, error) {
	if s.CreateFranchiseFn != nil {
		return s.CreateFranchiseFn(ctx, actor, name, adminEmails)
	}
	admins := make([]model.FranchiseAdmin, 0, len(adminEmails))
	for i, email := range adminEmails {
		admins = append(admins, model.FranchiseAdmin{ID: int64(i + 1), Email: email})
	}
	return &model.Franchise{ID: 1, Name: name, Admins: admins}, nil
}

// DeleteFranchise delegates to DeleteFranchiseFn.
func (s FranchiseFacadeStub) DeleteFranchise(ctx context.Context, actor *model.User, franchiseID int64) error {
	if s.DeleteFranchiseFn != nil {
		return s.DeleteFranchiseFn(ctx, actor, franchiseID)
	}
	return nil
}

// CreateStore echoes the requested store.
func (s FranchiseFacadeStub) CreateStore(ctx context.Context, actor *model.User, franchiseID int64, name string) (*model.Store, error) {
	if s.CreateStoreFn != nil {
		return s.CreateStoreFn(ctx, actor, franchiseID, name)
	}
	return &model.Store{ID: 1, FranchiseID: franchiseID, Name: name}, nil
}

// DeleteStore delegates to DeleteStoreFn.
func (s FranchiseFacadeStub) DeleteStore(ctx context.Context, actor *model.User, franchiseID, storeID int64) error {
	if s.DeleteStoreFn != nil {
		return s.DeleteStoreFn(ctx, actor, franchiseID, storeID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for menu and order endpoints.
type OrderFacadeStub struct {
	MenuFn        func(context.Context) ([]model.MenuItem, error)
	AddMenuItemFn func(context.Context, *model.User, model.MenuItem) ([]model.MenuItem, error)
	OrdersFn      func(context.Context, *model.User, int) (*model.OrderPage, error)
	CreateOrderFn func(context.Context, *model.User, model.Order) (*model.Receipt, error)
}

// Menu returns configured menu or a single pizza.
func (s OrderFacadeStub) Menu(ctx context.Context) ([]model.MenuItem, error) {
	if s.MenuFn != nil {
		return s.MenuFn(ctx)
	}
	return []model.MenuItem{{ID: 1, Title: "Veggie", Image: "pizza1.png", Price: 0.0038, Description: "A garden of delight"}}, nil
}

// AddMenuItem appends item to the default menu.
func (s OrderFacadeStub) AddMenuItem(ctx context.Context, actor *model.User, item model.MenuItem) ([]model.MenuItem, error) {
	if s.AddMenuItemFn != nil {
		return s.AddMenuItemFn(ctx, actor, item)
	}
	menu, _ := s.Menu(ctx)
	item.ID = int64(len(menu) + 1)
	return append(menu, item), nil
}

// Orders returns an empty page for actor.
func (s OrderFacadeStub) Orders(ctx context.Context, actor *model.User, page int) (*model.OrderPage, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, actor, page)
	}
	return &model.OrderPage{DinerID: actor.ID, Orders: []model.Order{}, Page: page}, nil
}

// CreateOrder stores nothing and returns a fulfilled receipt.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, actor *model.User, order model.Order) (*model.Receipt, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, actor, order)
	}
	order.ID = 1
	order.DinerID = actor.ID
	order.Date = time.Unix(0, 0).UTC()
	return &model.Receipt{Order: order, Fulfillment: &model.Fulfillment{JWT: "pizza", ReportURL: "https://factory/report"}}, nil
}

// PizzaFacadeStub aggregates the handler facades.
type PizzaFacadeStub struct {
	AuthFacadeStub
	FranchiseFacadeStub
	OrderFacadeStub

	HealthErr error
}

// HealthCheck returns HealthErr.
func (s PizzaFacadeStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// SweeperStub counts session sweeps.
type SweeperStub struct {
	Purged int64
	Err    error

	calls atomic.Int32
}

// SweepSessions records the call and returns the configured result.
func (s *SweeperStub) SweepSessions(context.Context) (int64, error) {
	s.calls.Add(1)
	return s.Purged, s.Err
}

// Calls reports how many sweeps ran.
func (s *SweeperStub) Calls() int {
	return int(s.calls.Load())
}
