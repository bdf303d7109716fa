package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pos-service/internal/domain"
)

// MenuRepository persists menu categories and items.
type MenuRepository interface {
	CreateCategory(ctx context.Context, category *domain.MenuCategory) error
	ListCategories(ctx context.Context) ([]*domain.MenuCategory, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	ListItems(ctx context.Context) ([]*domain.MenuItem, error)
	GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

type menuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a Postgres-backed implementation.
func NewMenuRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuRepository{pool: pool}
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *domain.MenuCategory) error {
	const query = `
        INSERT INTO menu_categories (name, description, is_active)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		category.Name,
		category.Description,
		category.IsActive,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]*domain.MenuCategory, error) {
	const query = `
        SELECT id, name, description, is_active, created_at, updated_at
        FROM menu_categories ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.MenuCategory
	for rows.Next() {
		var category domain.MenuCategory
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.IsActive,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

func (r *menuRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (category_id, name, description, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.CategoryID,
		item.Name,
		item.Description,
		item.Price,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuRepository) ListItems(ctx context.Context) ([]*domain.MenuItem, error) {
	const query = `
        SELECT id, category_id, name, description, price, created_at, updated_at
        FROM menu_items ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuRepository) GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	const query = `
        SELECT id, category_id, name, description, price, created_at, updated_at
        FROM menu_items WHERE id=$1`

	return scanMenuItem(r.pool.QueryRow(ctx, query, id))
}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
