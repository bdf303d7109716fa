package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrderRecalcTotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{ItemName: "Burger", UnitPrice: decimal.RequireFromString("9.99"), Quantity: 3},
			{ItemName: "Fries", UnitPrice: decimal.RequireFromString("2.50"), Quantity: 2},
		},
	}
	order.RecalcTotal()
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("34.97")))

	order.Items = nil
	order.RecalcTotal()
	require.True(t, order.TotalAmount.IsZero())
}

func TestRoleHelpers(t *testing.T) {
	require.True(t, RoleWaiter.Valid())
	require.True(t, RoleWaiter.Staff())
	require.False(t, RoleCustomer.Staff())
	require.False(t, Role("manager").Valid())
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusNew, OrderStatusInProgress, OrderStatusReady, OrderStatusServed, OrderStatusPaid, OrderStatusCanceled} {
		require.True(t, status.Valid())
	}
	require.False(t, OrderStatus("bogus").Valid())
}
