package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"payment-gateway/internal/shared/utils"
	"payment-gateway/pkg/logger"
)

type contextKey string

const clientIPKey contextKey = "client_ip"

// ClientIPMiddleware extracts the client IP address from the request
// and injects it into the request context for the payment service.
//
// Usage:
//
//	router.Use(middleware.ClientIPMiddleware())
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set(string(clientIPKey), clientIP)
		c.Request = c.Request.WithContext(WithClientIP(c.Request.Context(), clientIP))

		logger.Debug("Client IP extracted", map[string]interface{}{
			"ip":         clientIP,
			"is_private": utils.IsPrivateIP(clientIP),
			"path":       c.Request.URL.Path,
		})

		c.Next()
	}
}

// WithClientIP stores ip in ctx
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIPFromContext retrieves the client IP from context
// Returns empty string if not found
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}
