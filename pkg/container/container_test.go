package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/config"
	"payment-gateway/internal/domains/payment/service"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Payment Gateway", Environment: "development", Port: "8080"},
		VNPay: config.VNPayConfig{
			TmnCode:       "DEMOV01",
			HashSecret:    "SECRETKEY123",
			PaymentURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
			ReturnURL:     "https://shop.example.vn/payment/callback",
			Locale:        "en",
			ExpireMinutes: 20,
		},
	}
}

func TestNewContainerWithConfig(t *testing.T) {
	c, err := NewContainerWithConfig(testConfig(), service.LogOrderUpdater{})
	require.NoError(t, err)

	assert.NotNil(t, c.VNPayGateway)
	assert.NotNil(t, c.PaymentService)
	assert.NotNil(t, c.PaymentHandler)
	assert.Equal(t, "https://shop.example.vn/payment/callback", c.VNPayGateway.GetReturnURL())
}

func TestNewContainerWithConfig_RequiresInputs(t *testing.T) {
	_, err := NewContainerWithConfig(nil, service.LogOrderUpdater{})
	assert.Error(t, err)

	_, err = NewContainerWithConfig(testConfig(), nil)
	assert.Error(t, err)
}

func TestNewContainerWithConfig_BadGatewayConfig(t *testing.T) {
	cfg := testConfig()
	cfg.VNPay.HashSecret = ""

	_, err := NewContainerWithConfig(cfg, service.LogOrderUpdater{})
	assert.ErrorContains(t, err, "failed to init gateways")
}
