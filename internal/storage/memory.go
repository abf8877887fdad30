package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/damian3262-dot/device-repair-hub/internal/types"
)

// Memory keeps everything in process memory. It mirrors the Postgres
// store's observable behaviour and exists so handlers can be tested
// without a database.
type Memory struct {
	mu     sync.RWMutex
	orders map[int]types.Order
	users  map[string]types.User
	nextID int
}

func NewMemory() *Memory {
	return &Memory{
		orders: make(map[int]types.Order),
		users:  make(map[string]types.User),
		nextID: 1,
	}
}

// AddUser seeds a user record. Users have no write operation in the API,
// tests and fixtures insert them directly.
func (m *Memory) AddUser(username string, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[username] = types.User{ID: len(m.users) + 1, Username: username, Password: password}
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return nil, &UserNotFoundError{Username: username}
	}
	return &user, nil
}

func (m *Memory) GetOrders(_ context.Context, search string) ([]types.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]types.Order, 0, len(m.orders))
	for _, order := range m.orders {
		if search == "" || matchesSearch(order, search) {
			orders = append(orders, withBalance(order))
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (m *Memory) GetOrdersByDni(_ context.Context, dni string) ([]types.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var orders []types.Order
	for _, order := range m.orders {
		if order.ClientDni == dni {
			orders = append(orders, withBalance(order))
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (m *Memory) GetOrder(_ context.Context, id int) (*types.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, &OrderNotFoundError{ID: id}
	}
	order = withBalance(order)
	return &order, nil
}

func (m *Memory) CreateOrder(_ context.Context, newOrder types.NewOrder) (*types.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	newOrder = newOrder.Normalize()
	now := time.Now().UTC()

	order := types.Order{
		ID:               m.nextID,
		CustomerName:     newOrder.CustomerName,
		ClientDni:        newOrder.ClientDni,
		Phone:            newOrder.Phone,
		DeviceType:       newOrder.DeviceType,
		DeviceModel:      newOrder.DeviceModel,
		IssueDescription: newOrder.IssueDescription,
		Checklist:        newOrder.Checklist,
		EstimatedCost:    newOrder.EstimatedCost,
		Deposit:          newOrder.Deposit,
		Status:           newOrder.Status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	m.nextID++
	m.orders[order.ID] = order

	order = withBalance(order)
	return &order, nil
}

func (m *Memory) UpdateOrder(_ context.Context, id int, updates types.OrderUpdate) (*types.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, &OrderNotFoundError{ID: id}
	}

	if updates.CustomerName != nil {
		order.CustomerName = *updates.CustomerName
	}
	if updates.ClientDni != nil {
		order.ClientDni = *updates.ClientDni
	}
	if updates.Phone != nil {
		order.Phone = *updates.Phone
	}
	if updates.DeviceType != nil {
		order.DeviceType = *updates.DeviceType
	}
	if updates.DeviceModel != nil {
		order.DeviceModel = *updates.DeviceModel
	}
	if updates.IssueDescription != nil {
		order.IssueDescription = *updates.IssueDescription
	}
	if updates.Checklist != nil {
		order.Checklist = *updates.Checklist
	}
	if updates.EstimatedCost != nil {
		order.EstimatedCost = *updates.EstimatedCost
	}
	if updates.Deposit != nil {
		order.Deposit = *updates.Deposit
	}
	if updates.Status != nil {
		order.Status = *updates.Status
	}
	order.UpdatedAt = time.Now().UTC()
	m.orders[id] = order

	order = withBalance(order)
	return &order, nil
}

func (m *Memory) DeleteOrder(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[id]; !ok {
		return &OrderNotFoundError{ID: id}
	}
	delete(m.orders, id)
	return nil
}

func (m *Memory) GetStats(_ context.Context) (*types.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var stats types.Stats
	for _, order := range m.orders {
		stats.TotalOrders++
		if order.Status.Completed() {
			stats.CompletedOrders++
		} else {
			stats.ActiveOrders++
		}
		stats.TotalRevenue += order.Deposit
		stats.PendingRevenue += types.CalculateBalance(order.EstimatedCost, order.Deposit)
	}
	return &stats, nil
}

func withBalance(order types.Order) types.Order {
	order.Balance = types.CalculateBalance(order.EstimatedCost, order.Deposit)
	return order
}

func matchesSearch(order types.Order, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{
		order.CustomerName,
		order.ClientDni,
		order.Phone,
		order.DeviceModel,
		order.IssueDescription,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func sortNewestFirst(orders []types.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
}
