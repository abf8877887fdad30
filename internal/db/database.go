package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/damian3262-dot/device-repair-hub/internal/storage"
	"github.com/damian3262-dot/device-repair-hub/internal/types"
)

const orderColumns = `id, customer_name, client_dni, phone, device_type, device_model,
		 issue_description, checklist, estimated_cost, deposit, status, created_at, updated_at`

type Database struct {
	pool *pgxpool.Pool
}

var _ storage.Store = (*Database)(nil)

func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
	}, nil
}

func (d *Database) Close() {
	d.pool.Close()
}

func (d *Database) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	query := `
		SELECT id, username, password
		FROM users
		WHERE username = $1`

	rows, err := d.pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", &storage.UserNotFoundError{Username: username})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return &user, nil
}

func (d *Database) GetOrders(ctx context.Context, search string) ([]types.Order, error) {

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC, id DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if search != "" {
		query = `
			SELECT ` + orderColumns + `
			FROM orders
			WHERE customer_name ILIKE $1
			   OR client_dni ILIKE $1
			   OR phone ILIKE $1
			   OR device_model ILIKE $1
			   OR issue_description ILIKE $1
			ORDER BY created_at DESC, id DESC`
		rows, err = d.pool.Query(ctx, query, "%"+escapeLike(search)+"%")
	} else {
		rows, err = d.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return withBalances(orders), nil
}

func (d *Database) GetOrdersByDni(ctx context.Context, dni string) ([]types.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE client_dni = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := d.pool.Query(ctx, query, dni)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return withBalances(orders), nil
}

func (d *Database) GetOrder(ctx context.Context, id int) (*types.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	rows, err := d.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", &storage.OrderNotFoundError{ID: id})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	order.Balance = types.CalculateBalance(order.EstimatedCost, order.Deposit)
	return &order, nil
}

func (d *Database) CreateOrder(ctx context.Context, newOrder types.NewOrder) (*types.Order, error) {

	newOrder = newOrder.Normalize()

	query := `
		INSERT INTO orders (customer_name, client_dni, phone, device_type, device_model,
		                    issue_description, checklist, estimated_cost, deposit, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + orderColumns

	rows, err := d.pool.Query(ctx, query,
		newOrder.CustomerName,
		newOrder.ClientDni,
		newOrder.Phone,
		newOrder.DeviceType,
		newOrder.DeviceModel,
		newOrder.IssueDescription,
		newOrder.Checklist,
		newOrder.EstimatedCost,
		newOrder.Deposit,
		newOrder.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return nil, fmt.Errorf("%w", &storage.InvalidOrderError{Reason: pgErr.Message})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	order.Balance = types.CalculateBalance(order.EstimatedCost, order.Deposit)
	return &order, nil
}

func (d *Database) UpdateOrder(ctx context.Context, id int, updates types.OrderUpdate) (*types.Order, error) {

	set := []string{"updated_at = now()"}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if updates.CustomerName != nil {
		add("customer_name", *updates.CustomerName)
	}
	if updates.ClientDni != nil {
		add("client_dni", *updates.ClientDni)
	}
	if updates.Phone != nil {
		add("phone", *updates.Phone)
	}
	if updates.DeviceType != nil {
		add("device_type", *updates.DeviceType)
	}
	if updates.DeviceModel != nil {
		add("device_model", *updates.DeviceModel)
	}
	if updates.IssueDescription != nil {
		add("issue_description", *updates.IssueDescription)
	}
	if updates.Checklist != nil {
		add("checklist", *updates.Checklist)
	}
	if updates.EstimatedCost != nil {
		add("estimated_cost", *updates.EstimatedCost)
	}
	if updates.Deposit != nil {
		add("deposit", *updates.Deposit)
	}
	if updates.Status != nil {
		add("status", *updates.Status)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE orders
		SET %s
		WHERE id = $%d
		RETURNING `+orderColumns, strings.Join(set, ", "), len(args))

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", &storage.OrderNotFoundError{ID: id})
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return nil, fmt.Errorf("%w", &storage.InvalidOrderError{Reason: pgErr.Message})
		}
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	order.Balance = types.CalculateBalance(order.EstimatedCost, order.Deposit)
	return &order, nil
}

func (d *Database) DeleteOrder(ctx context.Context, id int) error {
	query := `
		DELETE FROM orders
		WHERE id = $1`

	tag, err := d.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected DB error %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w", &storage.OrderNotFoundError{ID: id})
	}
	return nil
}

func (d *Database) GetStats(ctx context.Context) (*types.Stats, error) {
	query := `
		SELECT status, estimated_cost, deposit
		FROM orders`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}
	defer rows.Close()

	// one full scan; revenue totals cover every order regardless of
	// status, so an overpaid order subtracts from pendingRevenue
	var stats types.Stats
	for rows.Next() {
		var (
			status        types.Status
			estimatedCost int
			deposit       int
		)
		if err := rows.Scan(&status, &estimatedCost, &deposit); err != nil {
			return nil, fmt.Errorf("failed unpacking rows %w", err)
		}
		stats.TotalOrders++
		if status.Completed() {
			stats.CompletedOrders++
		} else {
			stats.ActiveOrders++
		}
		stats.TotalRevenue += deposit
		stats.PendingRevenue += types.CalculateBalance(estimatedCost, deposit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}
	return &stats, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike keeps LIKE metacharacters in the needle literal, matching
// the in-memory store's substring semantics.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func withBalances(orders []types.Order) []types.Order {
	for i := range orders {
		orders[i].Balance = types.CalculateBalance(orders[i].EstimatedCost, orders[i].Deposit)
	}
	return orders
}
