package dto

import "github.com/shopspring/decimal"

// PaymentCreateRequest payload for recording a payment.
type PaymentCreateRequest struct {
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
}
