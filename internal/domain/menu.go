package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory groups menu items.
type MenuCategory struct {
	ID          string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuItem is a sellable dish or drink.
type MenuItem struct {
	ID          string
	CategoryID  *string
	Name        string
	Description *string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
