package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

// RequestLogger logs incoming HTTP requests using slog
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		// Skip probes to avoid noise
		if path == "/health" || path == "/metrics" {
			return
		}

		statusCode := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", statusCode),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Request.UserAgent()),
		}

		if requestID := GetRequestID(c); requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			attrs = append(attrs, slog.String("error", errorMessage))
		}
		if userID, exists := c.Get("userID"); exists {
			attrs = append(attrs, slog.Any("user_id", userID))
		}

		msg := "Incoming request"
		if statusCode >= 500 {
			logger.Log.Error(msg, attrs...)
		} else if statusCode >= 400 {
			logger.Log.Warn(msg, attrs...)
		} else {
			logger.Log.Info(msg, attrs...)
		}
	}
}
