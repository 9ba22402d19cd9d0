package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ardiansyahrp/orderflow/internal/interface/http"
)

// UserModule wires the user directory's own routes.
// POST /users, GET /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.CreateUser)
	rg.GET("/users/:id", m.Handler.GetUser)
}
