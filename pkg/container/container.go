package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"payment-gateway/internal/config"
	"payment-gateway/internal/domains/payment/gateway"
	"payment-gateway/internal/domains/payment/gateway/vnpay"
	paymentHandler "payment-gateway/internal/domains/payment/handler"
	paymentService "payment-gateway/internal/domains/payment/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của application.
// Order persistence lives outside this process and is reached through
// paymentService.OrderStatusUpdater.
type Container struct {
	Config *config.Config

	// Gateway
	VNPayGateway gateway.VNPayGateway

	// Services
	Orders         paymentService.OrderStatusUpdater
	PaymentService paymentService.PaymentService

	// Handlers
	PaymentHandler *paymentHandler.PaymentHandler
}

// NewContainer builds the dependency graph from environment config.
// Orders falls back to a log-only updater.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewContainerWithConfig(cfg, paymentService.LogOrderUpdater{})
}

// NewContainerWithConfig builds the graph from an explicit config and order updater.
//
// Thứ tự: Config -> Gateway -> Services -> Handlers
func NewContainerWithConfig(cfg *config.Config, orders paymentService.OrderStatusUpdater) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order status updater is required")
	}

	c := &Container{
		Config: cfg,
		Orders: orders,
	}

	if err := c.initGateways(); err != nil {
		return nil, fmt.Errorf("failed to init gateways: %w", err)
	}
	c.initServices()
	c.initHandlers()

	log.Info().
		Str("environment", cfg.App.Environment).
		Msg("DI container initialized")

	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initGateways() error {
	vnpayConfig := vnpay.NewConfig(
		c.Config.VNPay.TmnCode,
		c.Config.VNPay.HashSecret,
		c.Config.VNPay.PaymentURL,
		c.Config.VNPay.ReturnURL,
	)
	if c.Config.VNPay.Locale != "" {
		vnpayConfig.Locale = c.Config.VNPay.Locale
	}
	if c.Config.VNPay.ExpireMinutes > 0 {
		vnpayConfig.ExpireAfter = c.Config.VNPay.ExpireAfter()
	}

	client, err := vnpay.NewClient(vnpayConfig)
	if err != nil {
		return err
	}
	c.VNPayGateway = client
	return nil
}

func (c *Container) initServices() {
	c.PaymentService = paymentService.NewPaymentService(c.VNPayGateway, c.Orders)
}

func (c *Container) initHandlers() {
	c.PaymentHandler = paymentHandler.NewPaymentHandler(c.PaymentService)
}
