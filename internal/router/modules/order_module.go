package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/ardiansyahrp/orderflow/internal/interface/http"
	"github.com/ardiansyahrp/orderflow/internal/interface/middleware"
)

// OrderModule wires the order placement and listing routes.
// POST /orders, GET /orders
type OrderModule struct {
	Handler *handlers.OrderHandler
	Redis   *redis.Client
}

func NewOrderModule(h *handlers.OrderHandler, rdb *redis.Client) *OrderModule {
	return &OrderModule{Handler: h, Redis: rdb}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	// In-cluster callers bypass the per-IP limiter.
	createLimiter := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	listLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/orders", createLimiter, m.Handler.CreateOrder)
	rg.GET("/orders", listLimiter, m.Handler.ListOrders)
}
