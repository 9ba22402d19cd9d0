package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/ardiansyahrp/orderflow/internal/interface/http"
	"github.com/ardiansyahrp/orderflow/internal/interface/middleware"
)

// ProxyModule wires the user endpoints the order service forwards to the
// directory, so frontends talk to a single origin.
// POST /users, GET /users/:id
type ProxyModule struct {
	Handler *handlers.ProxyHandler
	Redis   *redis.Client
}

func NewProxyModule(h *handlers.ProxyHandler, rdb *redis.Client) *ProxyModule {
	return &ProxyModule{Handler: h, Redis: rdb}
}

func (m *ProxyModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/users", limiter, m.Handler.CreateUser)
	rg.GET("/users/:id", limiter, m.Handler.GetUser)
}
