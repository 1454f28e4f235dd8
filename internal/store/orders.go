package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/erazemk/lynx/internal/model"
)

// ValidateOrder checks an order body and returns it normalised: the title is
// trimmed, item fields are trimmed and non-positive quantities become 1.
func ValidateOrder(title string, items []model.ItemInput) (string, []model.ItemInput, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", nil, ErrEmptyTitle
	}
	if len(items) == 0 {
		return "", nil, ErrNoItems
	}

	out := make([]model.ItemInput, len(items))
	for i, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		it.Location = strings.TrimSpace(it.Location)
		if it.Name == "" || it.Location == "" {
			return "", nil, fmt.Errorf("item %d: %w", i+1, ErrInvalidItem)
		}
		it.Quantity = model.NormalizeQuantity(it.Quantity)
		out[i] = it
	}
	return title, out, nil
}

// CreateOrder creates a pending order with freshly identified, unfound items.
// Nothing is stored when the title or the item list is empty.
func (s *Store) CreateOrder(ctx context.Context, title string, items []model.ItemInput) (*model.Order, error) {
	title, items, err := ValidateOrder(title, items)
	if err != nil {
		return nil, err
	}

	orderID := s.ids.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, title, status, created_at) VALUES (?, ?, ?, ?)`,
		orderID, title, model.OrderStatusPending, s.now().UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	for _, it := range items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, name, location, quantity) VALUES (?, ?, ?, ?, ?)`,
			s.ids.New(), orderID, it.Name, it.Location, it.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("creating order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing order: %w", err)
	}

	return s.GetOrder(ctx, orderID)
}

// GetOrder returns an order with its items, or nil if it does not exist.
func (s *Store) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	orders, err := s.queryOrders(ctx,
		`SELECT id, title, status, created_at FROM orders WHERE id = ?`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	if len(orders) == 0 {
		return nil, nil
	}

	o := &orders[0]
	o.Items, err = s.orderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrders returns all orders, most recently created first.
func (s *Store) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.queryOrders(ctx,
		`SELECT id, title, status, created_at FROM orders ORDER BY created_at DESC, seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	byOrder, err := s.allOrderItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

// ActiveOrder returns the currently active order, or nil if none is active.
func (s *Store) ActiveOrder(ctx context.Context) (*model.Order, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM orders WHERE status = ?`, model.OrderStatusActive,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting active order: %w", err)
	}
	return s.GetOrder(ctx, id)
}

// ActivateOrder makes the order the active one. Any other active order is
// demoted to pending in the same transaction, so there is never more than
// one active order. Activating the already active order is a no-op.
func (s *Store) ActivateOrder(ctx context.Context, id string) (*model.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	status, err := orderStatus(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if status != model.OrderStatusActive && !model.CanTransition(status, model.OrderStatusActive) {
		return nil, fmt.Errorf("activating %s order: %w", status, ErrInvalidTransition)
	}

	// Demote first so the single-active index never sees two active rows.
	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE status = ? AND id <> ?`,
		model.OrderStatusPending, model.OrderStatusActive, id,
	)
	if err != nil {
		return nil, fmt.Errorf("demoting active orders: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ?`,
		model.OrderStatusActive, id,
	)
	if err != nil {
		return nil, fmt.Errorf("activating order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing activation: %w", err)
	}

	return s.GetOrder(ctx, id)
}

// CompleteOrder moves the active order to completed. It is never called
// implicitly when all items are found.
func (s *Store) CompleteOrder(ctx context.Context, id string) (*model.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	status, err := orderStatus(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(status, model.OrderStatusCompleted) {
		return nil, fmt.Errorf("completing %s order: %w", status, ErrInvalidTransition)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ?`,
		model.OrderStatusCompleted, id,
	)
	if err != nil {
		return nil, fmt.Errorf("completing order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing completion: %w", err)
	}

	return s.GetOrder(ctx, id)
}

// ToggleItemFound flips the found flag of an item on an active order and
// returns the item's new state.
func (s *Store) ToggleItemFound(ctx context.Context, orderID, itemID string) (*model.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	status, err := orderStatus(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if status != model.OrderStatusActive {
		return nil, ErrOrderNotActive
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE order_items SET found = 1 - found WHERE id = ? AND order_id = ?`,
		itemID, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("toggling item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("toggling item: %w", err)
	}
	if n == 0 {
		return nil, ErrItemNotFound
	}

	item := &model.Item{}
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, location, quantity, found FROM order_items WHERE id = ?`, itemID,
	).Scan(&item.ID, &item.Name, &item.Location, &item.Quantity, &item.Found)
	if err != nil {
		return nil, fmt.Errorf("reading toggled item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing toggle: %w", err)
	}
	return item, nil
}

// CountOrdersByStatus returns the number of orders in each status. Statuses
// without orders are reported as zero.
func (s *Store) CountOrdersByStatus(ctx context.Context) (map[model.OrderStatus]int, error) {
	counts := map[model.OrderStatus]int{
		model.OrderStatusPending:   0,
		model.OrderStatusActive:    0,
		model.OrderStatusCompleted: 0,
	}

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status model.OrderStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning order count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func orderStatus(ctx context.Context, tx *sql.Tx, id string) (model.OrderStatus, error) {
	var status model.OrderStatus
	err := tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = ?`, id).Scan(&status)
	if err == sql.ErrNoRows {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting order status: %w", err)
	}
	return status, nil
}

// queryOrders scans order rows without items. Rows are closed before it
// returns, which matters because the database has a single connection.
func (s *Store) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		var createdAt int64
		if err := rows.Scan(&o.ID, &o.Title, &o.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		o.CreatedAt = time.Unix(0, createdAt)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) orderItems(ctx context.Context, orderID string) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, location, quantity, found FROM order_items WHERE order_id = ? ORDER BY seq`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Location, &it.Quantity, &it.Found); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) allOrderItems(ctx context.Context) (map[string][]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT order_id, id, name, location, quantity, found FROM order_items ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	byOrder := make(map[string][]model.Item)
	for rows.Next() {
		var orderID string
		var it model.Item
		if err := rows.Scan(&orderID, &it.ID, &it.Name, &it.Location, &it.Quantity, &it.Found); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		byOrder[orderID] = append(byOrder[orderID], it)
	}
	return byOrder, rows.Err()
}
