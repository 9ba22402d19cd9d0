package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ardiansyahrp/orderflow/internal/application"
	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
	"github.com/ardiansyahrp/orderflow/pkg/response"
	"github.com/ardiansyahrp/orderflow/pkg/validation"
)

// UserHandler serves the user directory's own HTTP surface.
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), application.CreateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create user", nil)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(u))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidUserID):
			response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to fetch user", nil)
		}
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}
