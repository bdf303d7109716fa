package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pos-service/internal/domain"
)

func newTableFixture(t *testing.T) (*TableService, *fakeTableRepo, *fakeOrderRepo, *fakeUserRepo) {
	t.Helper()
	tables := newFakeTableRepo()
	orders := newFakeOrderRepo()
	users := newFakeUserRepo()
	return NewTableService(tables, orders, users), tables, orders, users
}

func TestTableSeatAndClose(t *testing.T) {
	svc, _, _, users := newTableFixture(t)
	ctx := context.Background()

	customer := users.add(&domain.User{Role: domain.RoleCustomer, Email: "c@example.com"})

	table, err := svc.Create(ctx, "T1", 4, nil)
	require.NoError(t, err)
	require.False(t, table.IsOccupied)

	seated, err := svc.Seat(ctx, table.ID, customer.ID)
	require.NoError(t, err)
	require.True(t, seated.IsOccupied)
	require.Equal(t, customer.ID, *seated.OccupiedBy)

	// The customer record carries the seat link.
	user, err := users.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, user.TableID)
	require.Equal(t, table.ID, *user.TableID)

	closed, err := svc.Close(ctx, table.ID)
	require.NoError(t, err)
	require.False(t, closed.IsOccupied)
	require.Nil(t, closed.OccupiedBy)

	user, err = users.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	require.Nil(t, user.TableID)
}

func TestTableSeatOccupied(t *testing.T) {
	svc, _, _, users := newTableFixture(t)
	ctx := context.Background()

	first := users.add(&domain.User{Role: domain.RoleCustomer, Email: "a@example.com"})
	second := users.add(&domain.User{Role: domain.RoleCustomer, Email: "b@example.com"})

	table, err := svc.Create(ctx, "T1", 2, nil)
	require.NoError(t, err)

	_, err = svc.Seat(ctx, table.ID, first.ID)
	require.NoError(t, err)

	_, err = svc.Seat(ctx, table.ID, second.ID)
	require.ErrorIs(t, err, ErrTableOccupied)
}

func TestTableCloseWithUnpaidOrders(t *testing.T) {
	svc, _, orders, users := newTableFixture(t)
	ctx := context.Background()

	customer := users.add(&domain.User{Role: domain.RoleCustomer, Email: "c@example.com"})

	table, err := svc.Create(ctx, "T1", 4, nil)
	require.NoError(t, err)
	_, err = svc.Seat(ctx, table.ID, customer.ID)
	require.NoError(t, err)

	order := &domain.Order{
		CustomerID: &customer.ID,
		TableID:    &table.ID,
		Status:     domain.OrderStatusServed,
	}
	require.NoError(t, orders.Create(ctx, order))

	_, err = svc.Close(ctx, table.ID)
	require.ErrorIs(t, err, ErrTableHasUnpaid)

	require.NoError(t, orders.MarkPaid(ctx, order.ID))
	closed, err := svc.Close(ctx, table.ID)
	require.NoError(t, err)
	require.False(t, closed.IsOccupied)
}

func TestTableUpdateAndNotFound(t *testing.T) {
	svc, _, _, _ := newTableFixture(t)
	ctx := context.Background()

	table, err := svc.Create(ctx, "T1", 4, nil)
	require.NoError(t, err)

	loc := "patio"
	updated, err := svc.Update(ctx, table.ID, "T1-b", 6, &loc)
	require.NoError(t, err)
	require.Equal(t, "T1-b", updated.TableNumber)
	require.Equal(t, 6, updated.Capacity)

	_, err = svc.Update(ctx, "missing-table", "T2", 2, nil)
	require.ErrorIs(t, err, ErrTableNotFound)

	_, err = svc.Seat(ctx, "missing-table", "someone")
	require.ErrorIs(t, err, ErrTableNotFound)
}
