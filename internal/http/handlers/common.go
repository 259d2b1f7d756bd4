package handlers

import (
	"net/http"

	intconfig "wargameshc/internal/config"
	"wargameshc/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var env intconfig.Env

// Init stores the environment used by handlers (JWT secret, price rates).
// Call once from the router before serving.
func Init(e intconfig.Env) {
	env = e
}

// RespondSuccess wraps data in the standard response envelope.
func RespondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success":    true,
		"data":       data,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondError sends the standard error envelope with request_id included.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success":    false,
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty request body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}
