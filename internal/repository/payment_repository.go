package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/pos-service/internal/domain"
)

// PaymentRepository persists payments against orders.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error)
	TotalPaidForOrder(ctx context.Context, orderID string) (decimal.Decimal, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (order_id, customer_id, amount, method, is_successful)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, paid_at`

	return r.pool.QueryRow(ctx, query,
		payment.OrderID,
		payment.CustomerID,
		payment.Amount,
		payment.Method,
		payment.IsSuccessful,
	).Scan(&payment.ID, &payment.PaidAt)
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	const query = `
        SELECT id, order_id, customer_id, amount, method, is_successful, paid_at
        FROM payments WHERE order_id=$1 ORDER BY paid_at`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.OrderID,
			&payment.CustomerID,
			&payment.Amount,
			&payment.Method,
			&payment.IsSuccessful,
			&payment.PaidAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) TotalPaidForOrder(ctx context.Context, orderID string) (decimal.Decimal, error) {
	const query = `
        SELECT COALESCE(SUM(amount), 0) FROM payments
        WHERE order_id=$1 AND is_successful=TRUE`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, orderID).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
