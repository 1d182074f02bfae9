package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// MicroserviceAuthMiddleware guards internal endpoints (worker metrics,
// enrichment callbacks) with a shared API key.
func MicroserviceAuthMiddleware(c *gin.Context) {
	apiKey := c.Request.Header.Get("X-API-Key")
	if apiKey != os.Getenv("INTERNAL_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	c.Next()
}
