package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/repository"
)

// MenuService manages menu categories and items.
type MenuService struct {
	menu repository.MenuRepository
}

// NewMenuService builds the service.
func NewMenuService(menu repository.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// CreateCategory adds a menu category.
func (s *MenuService) CreateCategory(ctx context.Context, name string, description *string, isActive bool) (*domain.MenuCategory, error) {
	category := &domain.MenuCategory{
		Name:        name,
		Description: description,
		IsActive:    isActive,
	}
	if err := s.menu.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *MenuService) ListCategories(ctx context.Context) ([]*domain.MenuCategory, error) {
	return s.menu.ListCategories(ctx)
}

// CreateItem adds a menu item.
func (s *MenuService) CreateItem(ctx context.Context, categoryID *string, name string, description *string, price decimal.Decimal) (*domain.MenuItem, error) {
	item := &domain.MenuItem{
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
	}
	if err := s.menu.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns all menu items.
func (s *MenuService) ListItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.menu.ListItems(ctx)
}

// GetItem returns one menu item.
func (s *MenuService) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.menu.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}
