package handlers

import (
	"net/http"

	intconfig "wargameshc/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	db := "ok"
	if err := intconfig.EnsureDB(); err != nil {
		db = "unavailable"
	}
	RespondSuccess(c, http.StatusOK, gin.H{
		"status":   "ok",
		"database": db,
	})
}
