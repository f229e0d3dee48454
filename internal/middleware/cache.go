package middleware

import "github.com/gin-gonic/gin"

// NoStore forbids caching. Applied to token validation responses so
// intermediaries never replay a stale verdict.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
