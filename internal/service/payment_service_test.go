package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/events"
)

func newPaymentFixture(t *testing.T) (*PaymentService, *fakeOrderRepo, *domain.Order) {
	t.Helper()
	orders := newFakeOrderRepo()
	payments := newFakePaymentRepo()
	svc := NewPaymentService(payments, orders, events.NewInMemoryDispatcher(), zap.NewNop())

	customerID := "customer-1"
	order := &domain.Order{
		CustomerID:  &customerID,
		Status:      domain.OrderStatusServed,
		TotalAmount: decimal.RequireFromString("40.00"),
	}
	require.NoError(t, orders.Create(context.Background(), order))
	return svc, orders, order
}

func TestPaymentExactAmountMarksPaid(t *testing.T) {
	svc, orders, order := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.Record(ctx, order.CustomerID, order.ID, decimal.RequireFromString("40.00"), domain.PaymentMethodCard)
	require.NoError(t, err)
	require.True(t, payment.IsSuccessful)

	stored, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.True(t, stored.IsPaid)
	require.Equal(t, domain.OrderStatusPaid, stored.Status)
}

func TestPaymentSplitAcrossTwoPayments(t *testing.T) {
	svc, orders, order := newPaymentFixture(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, order.CustomerID, order.ID, decimal.RequireFromString("15.00"), domain.PaymentMethodCash)
	require.NoError(t, err)

	stored, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.False(t, stored.IsPaid)

	_, err = svc.Record(ctx, order.CustomerID, order.ID, decimal.RequireFromString("25.00"), domain.PaymentMethodCard)
	require.NoError(t, err)

	stored, err = orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.True(t, stored.IsPaid)

	history, err := svc.ListForOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestPaymentExceedsBalance(t *testing.T) {
	svc, _, order := newPaymentFixture(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, order.CustomerID, order.ID, decimal.RequireFromString("50.00"), domain.PaymentMethodCard)
	require.ErrorIs(t, err, ErrPaymentExceedsBalance)

	_, err = svc.Record(ctx, order.CustomerID, order.ID, decimal.RequireFromString("30.00"), domain.PaymentMethodCard)
	require.NoError(t, err)

	// The remaining balance shrinks with each successful payment.
	_, err = svc.Record(ctx, order.CustomerID, order.ID, decimal.RequireFromString("10.01"), domain.PaymentMethodCash)
	require.ErrorIs(t, err, ErrPaymentExceedsBalance)
}

func TestPaymentUnknownOrder(t *testing.T) {
	svc, _, _ := newPaymentFixture(t)

	_, err := svc.Record(context.Background(), nil, "missing-order", decimal.RequireFromString("5.00"), domain.PaymentMethodCard)
	require.ErrorIs(t, err, ErrOrderNotFound)
}
