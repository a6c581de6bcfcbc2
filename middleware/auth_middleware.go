package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the static API key
const APIKeyHeader = "X-API-Key"

// APIKeyAuth authenticates requests using a static API key.
// The welcome and health endpoints stay public for load balancer health checks.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		requestKey := c.GetHeader(APIKeyHeader)
		if requestKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "API key is required",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(requestKey), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid API key",
			})
			return
		}

		c.Next()
	}
}
