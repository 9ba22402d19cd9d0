package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
	"github.com/ardiansyahrp/orderflow/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// encodeItems and decodeItems are the only translation between the typed
// item slice and the jsonb column, so a malformed stored document fails
// here instead of leaking into handlers.
func encodeItems(items []entity.OrderItem) ([]byte, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	return b, nil
}

func decodeItems(b []byte) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("decode order items: empty item list in stored record")
	}
	return items, nil
}

func (r *OrderRepository) Insert(ctx context.Context, o *entity.Order) error {
	items, err := encodeItems(o.Items)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, items, total, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, o.UserID, items, o.Total, o.CreatedAt)

	return row.Scan(&o.ID)
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, items, total, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var (
			o     entity.Order
			items []byte
		)
		if err := rows.Scan(&o.ID, &o.UserID, &items, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		if o.Items, err = decodeItems(items); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
