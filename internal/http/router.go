// Package api assembles the gin engine: middleware chain, public booking
// endpoints, and the JWT-protected admin surface.
package api

import (
	"log"
	stdhttp "net/http"

	intconfig "wargameshc/internal/config"
	h "wargameshc/internal/http/handlers"
	"wargameshc/internal/http/middleware"
	"wargameshc/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Init(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/catalog", h.GetCatalog)

		// Public submit endpoint used by the booking form.
		api.POST("/booking", h.CreateBooking)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(env.JWTSecret))
		{
			authed.GET("/auth/me", h.Me)
			authed.POST("/auth/register", middleware.RequireRoles(services.RoleAdmin), h.Register)

			bookings := authed.Group("/booking")
			bookings.GET("", h.GetBookings)
			bookings.GET("/stats", h.GetBookingStats)
			bookings.GET("/:id", h.GetBookingByID)
			bookings.PUT("/:id/status", h.UpdateBookingStatus)
			bookings.GET("/:id/confirmation", h.GetBookingConfirmationPDF)

			users := authed.Group("/users")
			users.Use(middleware.RequireRoles(services.RoleAdmin))
			users.GET("", h.GetUsers)
			users.GET("/:id", h.GetUserByID)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
			users.PUT("/:id/toggle-active", h.ToggleUserActive)
		}
	}

	return r
}
