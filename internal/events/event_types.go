package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/pos-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered     EventType = "user_registered"
	EventVerificationResent EventType = "verification_resent"
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
	EventPaymentRecorded    EventType = "payment_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload carries the verification code to the mail handler.
type UserRegisteredPayload struct {
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
	VerificationCode string `json:"-"`
}

// VerificationResentPayload payload.
type VerificationResentPayload struct {
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
	VerificationCode string `json:"-"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	OrderID    string  `json:"order_id"`
	CustomerID *string `json:"customer_id,omitempty"`
	TableID    *string `json:"table_id,omitempty"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OrderID   string             `json:"order_id"`
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID string               `json:"payment_id"`
	OrderID   string               `json:"order_id"`
	Amount    decimal.Decimal      `json:"amount"`
	Method    domain.PaymentMethod `json:"method"`
}
