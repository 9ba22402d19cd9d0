package repository

import (
	"context"

	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
)

// OrderRepository defines the interface for order-record persistence.
// Insert assigns the store identifier; List returns newest first.
type OrderRepository interface {
	Insert(ctx context.Context, o *entity.Order) error
	List(ctx context.Context) ([]entity.Order, error)
}
