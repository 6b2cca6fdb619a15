package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payment-gateway/internal/shared/middleware"
	"payment-gateway/pkg/container"
	"payment-gateway/pkg/metrics"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ClientIPMiddleware(),
		metrics.Middleware(),
	)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPaymentRoutes(v1, c)
		setupWebhookRoutes(v1, c)
	}

	return router
}

// ========================================
// PAYMENT ROUTES
// ========================================
func setupPaymentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	payments := v1.Group("/payments")
	{
		payments.POST("/vnpay", c.PaymentHandler.CreateVNPayPayment)
		payments.GET("/vnpay/return", c.PaymentHandler.VNPayReturn)
	}
}

// ========================================
// WEBHOOK ROUTES
// ========================================
// VNPay calls the IPN URL server-to-server, no auth middleware
func setupWebhookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	webhooks := v1.Group("/webhooks")
	{
		webhooks.GET("/vnpay", c.PaymentHandler.VNPayIPN)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
