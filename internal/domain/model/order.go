package model

import "time"

// MenuItem is a pizza that can be ordered.
type MenuItem struct {
	ID          int64
	Title       string
	Description string
	Image       string
	Price       float64
}

// OrderItem is a menu item snapshot stored with an order.
type OrderItem struct {
	ID          int64
	MenuID      int64
	Description string
	Price       float64
}

// Order describes a diner purchase at a franchise store.
type Order struct {
	ID          int64
	DinerID     int64
	FranchiseID int64
	StoreID     int64
	Date        time.Time
	Items       []OrderItem
}

// Total sums item prices.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}

// OrderPage is a page of a diner's order history.
type OrderPage struct {
	DinerID int64
	Orders  []Order
	Page    int
}

// Fulfillment is the pizza factory's answer to a submitted order.
type Fulfillment struct {
	JWT       string
	ReportURL string
}

// Receipt is a stored order together with the factory's answer.
// Fulfillment is nil when no factory is configured.
type Receipt struct {
	Order       Order
	Fulfillment *Fulfillment
}
