package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/repository"
)

// TableService manages dining room tables and their occupancy.
type TableService struct {
	tables repository.TableRepository
	orders repository.OrderRepository
	users  repository.UserRepository
}

// NewTableService builds the service.
func NewTableService(tables repository.TableRepository, orders repository.OrderRepository, users repository.UserRepository) *TableService {
	return &TableService{tables: tables, orders: orders, users: users}
}

// Create registers a new table.
func (s *TableService) Create(ctx context.Context, tableNumber string, capacity int, location *string) (*domain.RestaurantTable, error) {
	table := &domain.RestaurantTable{
		TableNumber: tableNumber,
		Capacity:    capacity,
		Location:    location,
	}
	if err := s.tables.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// List returns all tables.
func (s *TableService) List(ctx context.Context) ([]*domain.RestaurantTable, error) {
	return s.tables.List(ctx)
}

// Update changes table number, capacity or location.
func (s *TableService) Update(ctx context.Context, id, tableNumber string, capacity int, location *string) (*domain.RestaurantTable, error) {
	table, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	table.TableNumber = tableNumber
	table.Capacity = capacity
	table.Location = location
	if err := s.tables.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// Seat places a customer at a free table and records the link on the
// customer's identity record.
func (s *TableService) Seat(ctx context.Context, id, customerID string) (*domain.RestaurantTable, error) {
	table, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if table.IsOccupied {
		return nil, ErrTableOccupied
	}

	now := time.Now().UTC()
	if err := s.tables.SetOccupancy(ctx, id, &customerID, &now); err != nil {
		return nil, err
	}
	if err := s.users.AssignTable(ctx, customerID, &id); err != nil {
		return nil, err
	}

	table.IsOccupied = true
	table.OccupiedBy = &customerID
	table.OccupiedAt = &now
	return table, nil
}

// Close frees a table. Refused while any non-canceled order on the table is
// unpaid.
func (s *TableService) Close(ctx context.Context, id string) (*domain.RestaurantTable, error) {
	table, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	unpaid, err := s.orders.CountUnpaidByTable(ctx, id)
	if err != nil {
		return nil, err
	}
	if unpaid > 0 {
		return nil, ErrTableHasUnpaid
	}

	if err := s.tables.SetOccupancy(ctx, id, nil, nil); err != nil {
		return nil, err
	}
	if table.OccupiedBy != nil {
		if err := s.users.AssignTable(ctx, *table.OccupiedBy, nil); err != nil {
			return nil, err
		}
	}

	table.IsOccupied = false
	table.OccupiedBy = nil
	table.OccupiedAt = nil
	return table, nil
}

func (s *TableService) get(ctx context.Context, id string) (*domain.RestaurantTable, error) {
	table, err := s.tables.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}
