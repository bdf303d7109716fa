package dto

import "github.com/shopspring/decimal"

// CategoryCreateRequest payload for new menu categories.
type CategoryCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// MenuItemCreateRequest payload for new menu items.
type MenuItemCreateRequest struct {
	CategoryID  *string         `json:"category_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
