package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/pos-service/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) add(user *domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return user
}

func (r *fakeUserRepo) CreateUnverified(_ context.Context, user *domain.User) error {
	user.EmailVerified = false
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.add(user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) MarkVerified(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.EmailVerified = true
	return nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, user := range r.users {
		if user.Role == role {
			copied := *user
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) AssignTable(_ context.Context, userID string, tableID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	user.TableID = tableID
	return nil
}

// fakeOrderRepo is an in-memory OrderRepository.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	for i := range order.Items {
		order.Items[i].ID = uuid.NewString()
		order.Items[i].OrderID = order.ID
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) listWhere(match func(*domain.Order) bool) []*domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, order := range r.orders {
		if match(order) {
			copied := *order
			out = append(out, &copied)
		}
	}
	return out
}

func (r *fakeOrderRepo) ListByCustomer(_ context.Context, customerID string) ([]*domain.Order, error) {
	return r.listWhere(func(o *domain.Order) bool {
		return o.CustomerID != nil && *o.CustomerID == customerID
	}), nil
}

func (r *fakeOrderRepo) ListByWaiter(_ context.Context, waiterID string) ([]*domain.Order, error) {
	return r.listWhere(func(o *domain.Order) bool {
		return o.WaiterID != nil && *o.WaiterID == waiterID
	}), nil
}

func (r *fakeOrderRepo) ListKitchenQueue(_ context.Context) ([]*domain.Order, error) {
	return r.listWhere(func(o *domain.Order) bool {
		return o.Status == domain.OrderStatusInProgress
	}), nil
}

func (r *fakeOrderRepo) CountUnpaidByTable(_ context.Context, tableID string) (int, error) {
	matches := r.listWhere(func(o *domain.Order) bool {
		return o.TableID != nil && *o.TableID == tableID &&
			!o.IsPaid && o.Status != domain.OrderStatusCanceled
	})
	return len(matches), nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) SetWaiter(_ context.Context, id, waiterID string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.WaiterID = &waiterID
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) MarkPaid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.IsPaid = true
	order.Status = domain.OrderStatusPaid
	return nil
}

// fakeTableRepo is an in-memory TableRepository.
type fakeTableRepo struct {
	mu     sync.Mutex
	tables map[string]*domain.RestaurantTable
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[string]*domain.RestaurantTable)}
}

func (r *fakeTableRepo) Create(_ context.Context, table *domain.RestaurantTable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	table.ID = uuid.NewString()
	table.CreatedAt = time.Now()
	table.UpdatedAt = table.CreatedAt
	copied := *table
	r.tables[table.ID] = &copied
	return nil
}

func (r *fakeTableRepo) GetByID(_ context.Context, id string) (*domain.RestaurantTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table, ok := r.tables[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *table
	return &copied, nil
}

func (r *fakeTableRepo) List(_ context.Context) ([]*domain.RestaurantTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.RestaurantTable
	for _, table := range r.tables {
		copied := *table
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeTableRepo) Update(_ context.Context, table *domain.RestaurantTable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tables[table.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.TableNumber = table.TableNumber
	stored.Capacity = table.Capacity
	stored.Location = table.Location
	return nil
}

func (r *fakeTableRepo) SetOccupancy(_ context.Context, id string, occupiedBy *string, occupiedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	table, ok := r.tables[id]
	if !ok {
		return pgx.ErrNoRows
	}
	table.IsOccupied = occupiedBy != nil
	table.OccupiedBy = occupiedBy
	table.OccupiedAt = occupiedAt
	return nil
}

// fakePaymentRepo is an in-memory PaymentRepository.
type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment.ID = uuid.NewString()
	payment.PaidAt = time.Now()
	copied := *payment
	r.payments = append(r.payments, &copied)
	return nil
}

func (r *fakePaymentRepo) ListByOrder(_ context.Context, orderID string) ([]*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Payment
	for _, payment := range r.payments {
		if payment.OrderID == orderID {
			copied := *payment
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) TotalPaidForOrder(_ context.Context, orderID string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, payment := range r.payments {
		if payment.OrderID == orderID && payment.IsSuccessful {
			total = total.Add(payment.Amount)
		}
	}
	return total, nil
}
