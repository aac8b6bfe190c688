package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	corsMethods = strings.Join([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}, ", ")
	corsHeaders = strings.Join([]string{"Content-Type", "Authorization", "X-Request-ID", "Accept", "Origin"}, ", ")
)

// CORS allows the configured origins. "*" allows any origin without credentials.
// Preflight requests are answered with 204 whether or not the origin is allowed.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	wildcard := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		header := c.Writer.Header()

		switch {
		case wildcard:
			header.Set("Access-Control-Allow-Origin", "*")
		case origin != "" && allowed[origin]:
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Add("Vary", "Origin")
		}
		if header.Get("Access-Control-Allow-Origin") != "" {
			header.Set("Access-Control-Allow-Methods", corsMethods)
			header.Set("Access-Control-Allow-Headers", corsHeaders)
			header.Set("Access-Control-Expose-Headers", requestIDHeader)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
