package middleware

import "github.com/gin-gonic/gin"

// NoStore marks responses as uncacheable. Applied to the whole API group so
// intermediaries never serve a stale job or quote state.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
