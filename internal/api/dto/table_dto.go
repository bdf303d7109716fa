package dto

// TableCreateRequest payload for new tables.
type TableCreateRequest struct {
	TableNumber string  `json:"table_number"`
	Capacity    int     `json:"capacity"`
	Location    *string `json:"location"`
}

// TableUpdateRequest payload for table edits.
type TableUpdateRequest struct {
	TableNumber string  `json:"table_number"`
	Capacity    int     `json:"capacity"`
	Location    *string `json:"location"`
}

// SeatRequest payload for seating a customer. CustomerID is optional; staff
// may seat someone else, customers seat themselves.
type SeatRequest struct {
	CustomerID *string `json:"customer_id"`
}
