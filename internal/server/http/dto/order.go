package dto

import "time"

// MenuItemRequest describes PUT /api/order/menu payload.
type MenuItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// OrderItemRequest is a line of POST /api/order.
type OrderItemRequest struct {
	MenuID      int64   `json:"menuId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CreateOrderRequest describes POST /api/order payload.
type CreateOrderRequest struct {
	FranchiseID int64              `json:"franchiseId"`
	StoreID     int64              `json:"storeId"`
	Items       []OrderItemRequest `json:"items"`
}

type OrderItemResponse struct {
	ID          int64   `json:"id"`
	MenuID      int64   `json:"menuId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type OrderResponse struct {
	ID          int64               `json:"id"`
	FranchiseID int64               `json:"franchiseId"`
	StoreID     int64               `json:"storeId"`
	Date        time.Time           `json:"date"`
	Items       []OrderItemResponse `json:"items"`
}

// OrderPageResponse is GET /api/order result.
type OrderPageResponse struct {
	DinerID int64           `json:"dinerId"`
	Orders  []OrderResponse `json:"orders"`
	Page    int             `json:"page"`
}

// CreateOrderResponse is POST /api/order result. JWT and ReportURL come from the factory.
type CreateOrderResponse struct {
	Order     OrderResponse `json:"order"`
	JWT       string        `json:"jwt,omitempty"`
	ReportURL string        `json:"reportUrl,omitempty"`
}

// FactoryErrorResponse is returned when the factory rejects an order.
type FactoryErrorResponse struct {
	Message   string `json:"message"`
	ReportURL string `json:"reportUrl,omitempty"`
}

// RootResponse is GET / result.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
