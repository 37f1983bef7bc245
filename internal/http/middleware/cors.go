// README: Wildcard CORS with the fixed accepted header set.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// allowedHeaders mirrors the header set browser clients send alongside
// generate and save calls.
const allowedHeaders = "authorization, x-client-info, apikey, content-type"

// CORS allows any origin and answers preflight requests with 204.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
