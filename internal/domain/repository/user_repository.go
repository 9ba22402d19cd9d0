package repository

import (
	"context"

	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
)

// UserRepository defines the interface for user-record persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
