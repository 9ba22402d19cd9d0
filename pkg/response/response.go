package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope for every failure response. Success bodies are
// written raw by the handlers because the external contract fixes their shape.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// Error writes a failure response with a short human-readable message and
// optional per-field details.
func Error(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorBody{
		Error:     message,
		RequestID: c.GetString("request_id"),
		Details:   details,
	})
}
