package storage

import (
	"context"
	"fmt"

	"github.com/damian3262-dot/device-repair-hub/internal/types"
)

// Store is the persistence capability the rest of the service is written
// against. internal/db backs it with Postgres; Memory backs it with a map
// for tests.
type Store interface {
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetOrders(ctx context.Context, search string) ([]types.Order, error)
	GetOrdersByDni(ctx context.Context, dni string) ([]types.Order, error)
	GetOrder(ctx context.Context, id int) (*types.Order, error)
	CreateOrder(ctx context.Context, order types.NewOrder) (*types.Order, error)
	UpdateOrder(ctx context.Context, id int, updates types.OrderUpdate) (*types.Order, error)
	DeleteOrder(ctx context.Context, id int) error
	GetStats(ctx context.Context) (*types.Stats, error)
}

type OrderNotFoundError struct {
	ID int
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %d not found", e.ID)
}

type UserNotFoundError struct {
	Username string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User %s not found", e.Username)
}

// InvalidOrderError is returned when the backing store rejects an order
// payload, e.g. a Postgres constraint violation.
type InvalidOrderError struct {
	Reason string
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("Invalid order data: %s", e.Reason)
}
