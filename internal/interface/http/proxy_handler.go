package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ardiansyahrp/orderflow/internal/infrastructure/userdirectory"
	"github.com/ardiansyahrp/orderflow/pkg/response"
	"github.com/ardiansyahrp/orderflow/pkg/validation"
)

// ProxyHandler forwards user create/lookup calls to the user directory so
// that callers only ever talk to the order service. It adds no logic of its
// own beyond translating transport failures.
type ProxyHandler struct {
	Directory *userdirectory.Client
	Logger    *logrus.Logger
}

func NewProxyHandler(directory *userdirectory.Client, logger *logrus.Logger) *ProxyHandler {
	return &ProxyHandler{Directory: directory, Logger: logger}
}

func (h *ProxyHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	out := h.Directory.CreateUser(c.Request.Context(), req.Name, req.Email)
	if out.Unreachable {
		response.Error(c, http.StatusServiceUnavailable, "user service unavailable", nil)
		return
	}
	if out.User != nil {
		c.JSON(http.StatusCreated, userResponse{ID: out.User.ID, Name: out.User.Name, Email: out.User.Email})
		return
	}
	// Forward the directory's refusal as-is.
	if len(out.Body) > 0 {
		c.Data(out.StatusCode, "application/json; charset=utf-8", out.Body)
		return
	}
	response.Error(c, http.StatusBadGateway, "user validation failed", nil)
}

func (h *ProxyHandler) GetUser(c *gin.Context) {
	res := h.Directory.Lookup(c.Request.Context(), c.Param("id"))
	switch res.Status {
	case userdirectory.StatusFound:
		c.JSON(http.StatusOK, userResponse{ID: res.User.ID, Name: res.User.Name, Email: res.User.Email})
	case userdirectory.StatusNotFound:
		response.Error(c, http.StatusNotFound, "user not found", nil)
	case userdirectory.StatusUnreachable:
		response.Error(c, http.StatusServiceUnavailable, "user service unavailable", nil)
	default:
		response.Error(c, http.StatusBadGateway, "user validation failed", nil)
	}
}
