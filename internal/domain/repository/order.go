package repository

import (
	"context"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

// MenuRepository stores the pizza menu.
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Add(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
}

// OrderRepository describes persistence operations with diner orders.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	ListByDiner(ctx context.Context, dinerID int64, limit, offset int) ([]model.Order, error)
}

// Fulfiller hands orders over to the pizza factory.
type Fulfiller interface {
	Fulfill(ctx context.Context, diner model.User, order model.Order) (*model.Fulfillment, error)
}
