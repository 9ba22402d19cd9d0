package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
	repo "github.com/ardiansyahrp/orderflow/internal/domain/repository"
	"github.com/ardiansyahrp/orderflow/internal/infrastructure/userdirectory"
)

// UserValidator answers whether a user identifier denotes an existing user.
// The HTTP directory client implements it; tests substitute fakes.
type UserValidator interface {
	Lookup(ctx context.Context, id string) userdirectory.Result
}

// EventPublisher emits a JSON message for downstream consumers.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// OrderService runs the admission workflow: structural validation, then the
// user-existence check, then persistence, short-circuiting on the first
// failure. No transaction spans the directory and the order store,
// so correctness rests entirely on that ordering.
type OrderService struct {
	Repo      repo.OrderRepository
	Directory UserValidator
	Events    EventPublisher // optional
	Logger    *logrus.Logger
}

func NewOrderService(repo repo.OrderRepository, directory UserValidator, events EventPublisher, logger *logrus.Logger) *OrderService {
	return &OrderService{Repo: repo, Directory: directory, Events: events, Logger: logger}
}

type PlaceOrderInput struct {
	UserID string
	Items  []entity.OrderItem
	Total  float64
}

// validate rejects structurally bad input before any network call is made.
func (in PlaceOrderInput) validate() *ValidationError {
	if in.UserID == "" {
		return &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if len(in.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "at least one item is required"}
	}
	for _, it := range in.Items {
		if l := len(it.SKU); l < 1 || l > 64 {
			return &ValidationError{Field: "items.sku", Reason: "must be 1-64 characters"}
		}
		if it.Qty < 1 || it.Qty > 1000 {
			return &ValidationError{Field: "items.qty", Reason: "must be between 1 and 1000"}
		}
	}
	if in.Total <= 0 {
		return &ValidationError{Field: "total", Reason: "must be greater than zero"}
	}
	return nil
}

// orderCreatedEvent is the best-effort message published after an insert.
type orderCreatedEvent struct {
	OrderID   string             `json:"order_id"`
	UserID    string             `json:"user_id"`
	Items     []entity.OrderItem `json:"items"`
	Total     float64            `json:"total"`
	CreatedAt string             `json:"created_at"`
}

// PlaceOrder admits an order or returns a classified error:
// *ValidationError / ErrInvalidUserID / ErrUserNotFound for requests the
// caller must fix, ErrDirectoryUnavailable when the directory cannot be
// reached, ErrDirectoryMisbehaving when it answers nonsense, and the raw
// repository error when the insert fails after validation succeeded.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*entity.Order, error) {
	if verr := in.validate(); verr != nil {
		return nil, verr
	}

	// The directory only ever assigns UUIDs, so a non-UUID id cannot exist.
	// Rejecting it here keeps it in the invalid-input category and saves a
	// round trip that could only come back not-found.
	if _, err := uuid.Parse(in.UserID); err != nil {
		return nil, ErrInvalidUserID
	}

	res := s.Directory.Lookup(ctx, in.UserID)
	switch res.Status {
	case userdirectory.StatusUnreachable:
		return nil, ErrDirectoryUnavailable
	case userdirectory.StatusNotFound:
		return nil, ErrUserNotFound
	case userdirectory.StatusFound:
		// proceed
	default:
		return nil, ErrDirectoryMisbehaving
	}

	// The existence check above is point-in-time only: the user may be
	// removed between here and the insert, and the order still goes
	// through. Accepted race, see the repository docs.
	order := &entity.Order{
		UserID:    in.UserID,
		Items:     append([]entity.OrderItem(nil), in.Items...),
		Total:     in.Total,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Insert(ctx, order); err != nil {
		s.Logger.WithError(err).WithField("user_id", in.UserID).Error("order insert failed")
		return nil, err
	}

	if s.Events != nil {
		evt := orderCreatedEvent{
			OrderID:   order.ID,
			UserID:    order.UserID,
			Items:     order.Items,
			Total:     order.Total,
			CreatedAt: order.CreatedAt.Format(time.RFC3339Nano),
		}
		if err := s.Events.PublishJSON(ctx, evt); err != nil {
			s.Logger.WithError(err).WithField("order_id", order.ID).Warn("order.created publish failed")
		}
	}

	s.Logger.WithFields(logrus.Fields{"order_id": order.ID, "user_id": order.UserID}).Info("order created")
	return order, nil
}

// ListOrders returns every persisted order, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.Repo.List(ctx)
}
