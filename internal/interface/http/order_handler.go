package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ardiansyahrp/orderflow/internal/application"
	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
	"github.com/ardiansyahrp/orderflow/pkg/response"
	"github.com/ardiansyahrp/orderflow/pkg/validation"
)

// OrderHandler serves order placement and listing.
type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type orderItemPayload struct {
	SKU string `json:"sku" binding:"required,min=1,max=64"`
	Qty int    `json:"qty" binding:"required,gte=1,lte=1000"`
}

type createOrderRequest struct {
	UserID string             `json:"user_id" binding:"required"`
	Items  []orderItemPayload `json:"items" binding:"required,min=1,dive"`
	Total  float64            `json:"total" binding:"required,gt=0"`
}

type orderResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Items     []entity.OrderItem `json:"items"`
	Total     float64            `json:"total"`
	CreatedAt string             `json:"created_at"`
}

func toOrderResponse(o *entity.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     o.Items,
		Total:     o.Total,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.OrderItem{SKU: it.SKU, Qty: it.Qty})
	}

	order, err := h.Svc.PlaceOrder(c.Request.Context(), application.PlaceOrderInput{
		UserID: req.UserID,
		Items:  items,
		Total:  req.Total,
	})
	if err != nil {
		var verr *application.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{verr.Field: verr.Reason})
		case errors.Is(err, application.ErrInvalidUserID):
			response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusBadRequest, "cannot create order: user not found", nil)
		case errors.Is(err, application.ErrDirectoryUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "user service unavailable", nil)
		case errors.Is(err, application.ErrDirectoryMisbehaving):
			response.Error(c, http.StatusBadGateway, "user validation failed", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to create order", nil)
		}
		return
	}

	// The response reflects the persisted record, id and timestamp included,
	// not the request echoed back.
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.Svc.ListOrders(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list orders failed")
		response.Error(c, http.StatusInternalServerError, "failed to list orders", nil)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}
