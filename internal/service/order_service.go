package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/repository"
)

// OrderItemInput describes one requested line item.
type OrderItemInput struct {
	MenuItemID *string
	ItemName   string
	UnitPrice  decimal.Decimal
	Quantity   int
}

// OrderService coordinates the order lifecycle between customers, waiters
// and the kitchen.
type OrderService struct {
	orders     repository.OrderRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, dispatcher: dispatcher, logger: logger}
}

// Create opens a new order for a customer, assigns a random waiter and
// computes the total from the line items.
func (s *OrderService) Create(ctx context.Context, customerID string, tableID, specialRequest *string, items []OrderItemInput) (*domain.Order, error) {
	waiters, err := s.users.ListByRole(ctx, domain.RoleWaiter)
	if err != nil {
		return nil, err
	}
	if len(waiters) == 0 {
		return nil, ErrNoWaitersAvailable
	}
	waiter := waiters[rand.Intn(len(waiters))]

	order := &domain.Order{
		CustomerID:     &customerID,
		WaiterID:       &waiter.ID,
		TableID:        tableID,
		Status:         domain.OrderStatusNew,
		SpecialRequest: specialRequest,
	}
	for _, input := range items {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: input.MenuItemID,
			ItemName:   input.ItemName,
			UnitPrice:  input.UnitPrice,
			Quantity:   input.Quantity,
		})
	}
	order.RecalcTotal()

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventOrderCreated, events.OrderCreatedPayload{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		TableID:    order.TableID,
	})
	return order, nil
}

// Get returns one order with its items.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.getOrder(ctx, id)
}

// ListForCustomer returns the customer's own orders.
func (s *OrderService) ListForCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

// ListForWaiter returns orders assigned to a waiter.
func (s *OrderService) ListForWaiter(ctx context.Context, waiterID string) ([]*domain.Order, error) {
	return s.orders.ListByWaiter(ctx, waiterID)
}

// KitchenQueue returns orders currently being prepared.
func (s *OrderService) KitchenQueue(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.ListKitchenQueue(ctx)
}

// Approve moves a new order into preparation and pins it to the approving
// waiter.
func (s *OrderService) Approve(ctx context.Context, orderID, waiterID string) (*domain.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusNew {
		return nil, ErrInvalidOrderState
	}

	if err := s.orders.SetWaiter(ctx, orderID, waiterID, domain.OrderStatusInProgress); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventOrderStatusChanged, events.OrderStatusChangedPayload{
		OrderID:   orderID,
		OldStatus: order.Status,
		NewStatus: domain.OrderStatusInProgress,
	})

	order.Status = domain.OrderStatusInProgress
	order.WaiterID = &waiterID
	return order, nil
}

// UpdateStatus moves an order to a new lifecycle state.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderState
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventOrderStatusChanged, events.OrderStatusChangedPayload{
		OrderID:   orderID,
		OldStatus: order.Status,
		NewStatus: status,
	})

	order.Status = status
	return order, nil
}

func (s *OrderService) getOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, events.NewEvent(eventType, payload)); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(eventType)), zap.Error(err))
	}
}
