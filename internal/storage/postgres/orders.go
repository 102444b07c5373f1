package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

type menuRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, title, description, image, price FROM menu ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.MenuItem{}
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Image, &m.Price); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) Add(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	const query = `INSERT INTO menu (title, description, image, price) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.storage.pool.QueryRow(ctx, query, item.Title, item.Description, item.Image, item.Price).Scan(&item.ID); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const (
		insertOrder = `INSERT INTO diner_orders (diner_id, franchise_id, store_id, date) VALUES ($1, $2, $3, $4) RETURNING id`
		insertItem  = `INSERT INTO order_items (order_id, menu_id, description, price) VALUES ($1, $2, $3, $4) RETURNING id`
	)
	items := make([]model.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertOrder, order.DinerID, order.FranchiseID, order.StoreID, order.Date).Scan(&order.ID); err != nil {
			return err
		}
		for i := range order.Items {
			item := &order.Items[i]
			if err := tx.QueryRow(ctx, insertItem, order.ID, item.MenuID, item.Description, item.Price).Scan(&item.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByDiner(ctx context.Context, dinerID int64, limit, offset int) ([]model.Order, error) {
	const (
		selectOrders = `SELECT id, diner_id, franchise_id, store_id, date FROM diner_orders
                        WHERE diner_id=$1 ORDER BY date DESC, id DESC LIMIT $2 OFFSET $3`
		selectItems = `SELECT id, order_id, menu_id, description, price FROM order_items
                       WHERE order_id = ANY($1) ORDER BY id`
	)

	rows, err := r.storage.pool.Query(ctx, selectOrders, dinerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.DinerID, &o.FranchiseID, &o.StoreID, &o.Date); err != nil {
			return nil, err
		}
		o.Items = []model.OrderItem{}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	if len(result) == 0 {
		return result, nil
	}

	ids := make([]int64, len(result))
	index := make(map[int64]int, len(result))
	for i, o := range result {
		ids[i] = o.ID
		index[o.ID] = i
	}

	itemRows, err := r.storage.pool.Query(ctx, selectItems, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var (
			orderID int64
			item    model.OrderItem
		)
		if err := itemRows.Scan(&item.ID, &orderID, &item.MenuID, &item.Description, &item.Price); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			result[i].Items = append(result[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
