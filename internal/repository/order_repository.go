package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pos-service/internal/domain"
)

// OrderRepository persists orders and their line items.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	ListByWaiter(ctx context.Context, waiterID string) ([]*domain.Order, error)
	ListKitchenQueue(ctx context.Context) ([]*domain.Order, error)
	CountUnpaidByTable(ctx context.Context, tableID string) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	SetWaiter(ctx context.Context, id, waiterID string, status domain.OrderStatus) error
	MarkPaid(ctx context.Context, id string) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `id, customer_id, waiter_id, kitchen_staff_id, table_id, status,
        special_request, total_amount, is_paid, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.WaiterID,
		&order.KitchenStaffID,
		&order.TableID,
		&order.Status,
		&order.SpecialRequest,
		&order.TotalAmount,
		&order.IsPaid,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts the order and its line items in one transaction.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `
        INSERT INTO orders (customer_id, waiter_id, kitchen_staff_id, table_id, status, special_request, total_amount, is_paid)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, orderQuery,
		order.CustomerID,
		order.WaiterID,
		order.KitchenStaffID,
		order.TableID,
		order.Status,
		order.SpecialRequest,
		order.TotalAmount,
		order.IsPaid,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const itemQuery = `
        INSERT INTO order_items (order_id, menu_item_id, item_name, unit_price, quantity)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery,
			item.OrderID,
			item.MenuItemID,
			item.ItemName,
			item.UnitPrice,
			item.Quantity,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	const query = `
        SELECT id, order_id, menu_item_id, item_name, unit_price, quantity
        FROM order_items WHERE order_id=$1`

	rows, err := r.pool.Query(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.ItemName,
			&item.UnitPrice,
			&item.Quantity,
		); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *orderRepository) listWhere(ctx context.Context, where string, args ...any) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + where + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		if err := r.loadItems(ctx, order); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return r.listWhere(ctx, "customer_id=$1", customerID)
}

func (r *orderRepository) ListByWaiter(ctx context.Context, waiterID string) ([]*domain.Order, error) {
	return r.listWhere(ctx, "waiter_id=$1", waiterID)
}

func (r *orderRepository) ListKitchenQueue(ctx context.Context) ([]*domain.Order, error) {
	return r.listWhere(ctx, "status=$1", domain.OrderStatusInProgress)
}

func (r *orderRepository) CountUnpaidByTable(ctx context.Context, tableID string) (int, error) {
	const query = `
        SELECT COUNT(*) FROM orders
        WHERE table_id=$1 AND is_paid=FALSE AND status <> $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, tableID, domain.OrderStatusCanceled).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const query = `
        UPDATE orders SET status=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) SetWaiter(ctx context.Context, id, waiterID string, status domain.OrderStatus) error {
	const query = `
        UPDATE orders SET waiter_id=$1, status=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, waiterID, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, id string) error {
	const query = `
        UPDATE orders SET is_paid=TRUE, status=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, domain.OrderStatusPaid, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
