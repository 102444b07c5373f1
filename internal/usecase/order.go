package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/policy"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
)

// OrdersPerPage bounds the size of one order history page.
const OrdersPerPage = 10

// OrderUseCase encapsulates menu and order lifecycle logic.
type OrderUseCase struct {
	menu       repository.MenuRepository
	orders     repository.OrderRepository
	franchises repository.FranchiseRepository
	factory    repository.Fulfiller
	now        func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	menu repository.MenuRepository,
	orders repository.OrderRepository,
	franchises repository.FranchiseRepository,
	factory repository.Fulfiller,
) *OrderUseCase {
	return &OrderUseCase{menu: menu, orders: orders, franchises: franchises, factory: factory, now: time.Now}
}

// Menu returns the pizza menu.
func (u *OrderUseCase) Menu(ctx context.Context) ([]model.MenuItem, error) {
	return u.menu.List(ctx)
}

// AddMenuItem appends item to the menu and returns the updated menu.
func (u *OrderUseCase) AddMenuItem(ctx context.Context, actor *model.User, item model.MenuItem) ([]model.MenuItem, error) {
	if err := policy.Authorize(actor, policy.RequireRole(actor, model.RoleAdmin)); err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" || item.Price <= 0 {
		return nil, domainErrors.ErrInvalidPayload
	}

	if _, err := u.menu.Add(ctx, item); err != nil {
		return nil, err
	}
	return u.menu.List(ctx)
}

// Orders returns one page of actor's order history. Pages start at 1.
func (u *OrderUseCase) Orders(ctx context.Context, actor *model.User, page int) (*model.OrderPage, error) {
	if err := policy.Authorize(actor, true); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	orders, err := u.orders.ListByDiner(ctx, actor.ID, OrdersPerPage, (page-1)*OrdersPerPage)
	if err != nil {
		return nil, err
	}
	return &model.OrderPage{DinerID: actor.ID, Orders: orders, Page: page}, nil
}

// Create stores an order for actor and hands it to the pizza factory. Item
// descriptions and prices are taken from the menu. On factory failure the
// stored order is returned together with an error wrapping
// ErrFactoryUnavailable.
func (u *OrderUseCase) Create(ctx context.Context, actor *model.User, order model.Order) (*model.Receipt, error) {
	if err := policy.Authorize(actor, true); err != nil {
		return nil, err
	}
	if order.FranchiseID <= 0 || order.StoreID <= 0 || len(order.Items) == 0 {
		return nil, domainErrors.ErrInvalidPayload
	}

	if err := u.checkStore(ctx, order.FranchiseID, order.StoreID); err != nil {
		return nil, err
	}

	items, err := u.priceItems(ctx, order.Items)
	if err != nil {
		return nil, err
	}

	order.ID = 0
	order.DinerID = actor.ID
	order.Date = u.now().UTC()
	order.Items = items

	stored, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	receipt := &model.Receipt{Order: *stored}
	fulfillment, err := u.factory.Fulfill(ctx, *actor, *stored)
	receipt.Fulfillment = fulfillment
	if err != nil {
		return receipt, fmt.Errorf("%w: %v", domainErrors.ErrFactoryUnavailable, err)
	}
	return receipt, nil
}

func (u *OrderUseCase) checkStore(ctx context.Context, franchiseID, storeID int64) error {
	franchise, err := u.franchises.Get(ctx, franchiseID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrInvalidPayload
		}
		return err
	}
	for _, s := range franchise.Stores {
		if s.ID == storeID {
			return nil
		}
	}
	return domainErrors.ErrInvalidPayload
}

func (u *OrderUseCase) priceItems(ctx context.Context, requested []model.OrderItem) ([]model.OrderItem, error) {
	menu, err := u.menu.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	items := make([]model.OrderItem, 0, len(requested))
	for _, r := range requested {
		m, ok := byID[r.MenuID]
		if !ok {
			return nil, domainErrors.ErrInvalidPayload
		}
		items = append(items, model.OrderItem{MenuID: m.ID, Description: m.Title, Price: m.Price})
	}
	return items, nil
}
