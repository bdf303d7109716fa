package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents lifecycle states for an order.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusServed     OrderStatus = "served"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// Valid reports whether the status is a known one.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusReady,
		OrderStatusServed, OrderStatusPaid, OrderStatusCanceled:
		return true
	}
	return false
}

// Order is a customer's order with its line items.
type Order struct {
	ID             string
	CustomerID     *string
	WaiterID       *string
	KitchenStaffID *string
	TableID        *string
	Status         OrderStatus
	SpecialRequest *string
	TotalAmount    decimal.Decimal
	IsPaid         bool
	Items          []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecalcTotal recomputes the running total from line items.
func (o *Order) RecalcTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	o.TotalAmount = total
}

// OrderItem is one line of an order. ItemName and UnitPrice are snapshots
// taken at ordering time so menu edits do not rewrite past orders.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID *string
	ItemName   string
	UnitPrice  decimal.Decimal
	Quantity   int
}

// LineTotal returns unit price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
