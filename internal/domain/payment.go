package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodPOS  PaymentMethod = "pos"
)

// Valid reports whether the method is a known one.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodPOS:
		return true
	}
	return false
}

// Payment records money received against an order.
type Payment struct {
	ID           string
	OrderID      string
	CustomerID   *string
	Amount       decimal.Decimal
	Method       PaymentMethod
	IsSuccessful bool
	PaidAt       time.Time
}
