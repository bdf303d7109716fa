package domain

import "time"

// RestaurantTable is a physical table in the dining room.
type RestaurantTable struct {
	ID          string
	TableNumber string
	Capacity    int
	Location    *string
	IsOccupied  bool
	OccupiedBy  *string
	OccupiedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
