package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound indicates that the order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNotCancellable indicates that the order is not in a cancellable state.
	ErrOrderNotCancellable = errors.New("only pending orders can be cancelled")
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

// Constants for all order statuses.
const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem holds a single line of an order.
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int32           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Notes    string          `json:"notes,omitempty"`
}

// Order holds a customer order as seen by the restaurant operator.
type Order struct {
	ID              string          `json:"id"`
	CustomerPhone   string          `json:"customer_phone"`
	OrderType       string          `json:"order_type"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Tax             decimal.Decimal `json:"tax"`
	Tips            decimal.Decimal `json:"tips"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	Status          OrderStatus     `json:"status"`
	CancelReason    string          `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ListOrdersParams is the input data to list orders.
type ListOrdersParams struct {
	Status OrderStatus
	Limit  int32
	Offset int32
}
