package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/repository"
)

// PaymentService records payments and reconciles them against order totals.
type PaymentService struct {
	payments   repository.PaymentRepository
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, orders repository.OrderRepository, dispatcher events.Dispatcher, logger *zap.Logger) *PaymentService {
	return &PaymentService{payments: payments, orders: orders, dispatcher: dispatcher, logger: logger}
}

// Record validates the amount against the remaining balance, stores the
// payment and marks the order paid once the balance reaches zero.
func (s *PaymentService) Record(ctx context.Context, customerID *string, orderID string, amount decimal.Decimal, method domain.PaymentMethod) (*domain.Payment, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	paid, err := s.payments.TotalPaidForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	remaining := order.TotalAmount.Sub(paid)
	if amount.GreaterThan(remaining) {
		return nil, ErrPaymentExceedsBalance
	}

	payment := &domain.Payment{
		OrderID:      orderID,
		CustomerID:   customerID,
		Amount:       amount,
		Method:       method,
		IsSuccessful: true,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if amount.Equal(remaining) {
		if err := s.orders.MarkPaid(ctx, orderID); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, events.EventPaymentRecorded, events.PaymentRecordedPayload{
		PaymentID: payment.ID,
		OrderID:   orderID,
		Amount:    amount,
		Method:    method,
	})
	return payment, nil
}

// ListForOrder returns the payments recorded against an order.
func (s *PaymentService) ListForOrder(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	return s.payments.ListByOrder(ctx, orderID)
}

func (s *PaymentService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, events.NewEvent(eventType, payload)); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(eventType)), zap.Error(err))
	}
}
