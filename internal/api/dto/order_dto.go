package dto

import "github.com/shopspring/decimal"

// OrderItemRequest is one requested line item. ItemName and UnitPrice are
// captured as ordered so later menu edits do not change the order.
type OrderItemRequest struct {
	MenuItemID *string         `json:"menu_item_id"`
	ItemName   string          `json:"item_name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

// OrderCreateRequest payload for new orders.
type OrderCreateRequest struct {
	TableID        *string            `json:"table_id"`
	SpecialRequest *string            `json:"special_request"`
	Items          []OrderItemRequest `json:"items"`
}

// OrderStatusUpdateRequest payload for status transitions.
type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}
