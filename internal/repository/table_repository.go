package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pos-service/internal/domain"
)

// TableRepository persists restaurant tables and their occupancy.
type TableRepository interface {
	Create(ctx context.Context, table *domain.RestaurantTable) error
	GetByID(ctx context.Context, id string) (*domain.RestaurantTable, error)
	List(ctx context.Context) ([]*domain.RestaurantTable, error)
	Update(ctx context.Context, table *domain.RestaurantTable) error
	SetOccupancy(ctx context.Context, id string, occupiedBy *string, occupiedAt *time.Time) error
}

type tableRepository struct {
	pool *pgxpool.Pool
}

// NewTableRepository returns a Postgres-backed implementation.
func NewTableRepository(pool *pgxpool.Pool) TableRepository {
	return &tableRepository{pool: pool}
}

const tableColumns = `id, table_number, capacity, location, is_occupied, occupied_by,
        occupied_at, created_at, updated_at`

func scanTable(row pgx.Row) (*domain.RestaurantTable, error) {
	var table domain.RestaurantTable
	if err := row.Scan(
		&table.ID,
		&table.TableNumber,
		&table.Capacity,
		&table.Location,
		&table.IsOccupied,
		&table.OccupiedBy,
		&table.OccupiedAt,
		&table.CreatedAt,
		&table.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) Create(ctx context.Context, table *domain.RestaurantTable) error {
	const query = `
        INSERT INTO restaurant_tables (table_number, capacity, location)
        VALUES ($1, $2, $3)
        RETURNING id, is_occupied, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		table.TableNumber,
		table.Capacity,
		table.Location,
	).Scan(&table.ID, &table.IsOccupied, &table.CreatedAt, &table.UpdatedAt)
}

func (r *tableRepository) GetByID(ctx context.Context, id string) (*domain.RestaurantTable, error) {
	const query = `SELECT ` + tableColumns + ` FROM restaurant_tables WHERE id=$1`
	return scanTable(r.pool.QueryRow(ctx, query, id))
}

func (r *tableRepository) List(ctx context.Context) ([]*domain.RestaurantTable, error) {
	const query = `SELECT ` + tableColumns + ` FROM restaurant_tables ORDER BY table_number`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*domain.RestaurantTable
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

func (r *tableRepository) Update(ctx context.Context, table *domain.RestaurantTable) error {
	const query = `
        UPDATE restaurant_tables SET table_number=$1, capacity=$2, location=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		table.TableNumber,
		table.Capacity,
		table.Location,
		table.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tableRepository) SetOccupancy(ctx context.Context, id string, occupiedBy *string, occupiedAt *time.Time) error {
	const query = `
        UPDATE restaurant_tables SET is_occupied=$1, occupied_by=$2, occupied_at=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, occupiedBy != nil, occupiedBy, occupiedAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
