package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pos-service/internal/domain"
)

type fakeMenuRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.MenuCategory
	items      map[string]*domain.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		categories: make(map[string]*domain.MenuCategory),
		items:      make(map[string]*domain.MenuItem),
	}
}

func (r *fakeMenuRepo) CreateCategory(_ context.Context, category *domain.MenuCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.ID = uuid.NewString()
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeMenuRepo) ListCategories(_ context.Context) ([]*domain.MenuCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MenuCategory
	for _, category := range r.categories {
		copied := *category
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeMenuRepo) CreateItem(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = uuid.NewString()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeMenuRepo) ListItems(_ context.Context) ([]*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MenuItem
	for _, item := range r.items {
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeMenuRepo) GetItemByID(_ context.Context, id string) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *item
	return &copied, nil
}

func TestMenuCategoryAndItemLifecycle(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Pizza", nil, true)
	require.NoError(t, err)
	require.NotEmpty(t, category.ID)

	item, err := svc.CreateItem(ctx, &category.ID, "Margherita", nil, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)

	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	got, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, "Margherita", got.Name)
	require.True(t, got.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestMenuGetItemNotFound(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())

	_, err := svc.GetItem(context.Background(), "missing-item")
	require.ErrorIs(t, err, ErrMenuItemNotFound)
}
