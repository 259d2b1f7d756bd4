package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one access-log line per request, tagged with the request id.
// Booking submissions and PDF downloads are the slow paths worth watching.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		log.Printf("[HTTP] %s %s status=%d latency_ms=%.3f request_id=%s ip=%s",
			c.Request.Method,
			route,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds())/1000.0,
			GetRequestID(c),
			c.ClientIP(),
		)
	}
}
