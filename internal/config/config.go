package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config holds the application configuration, populated from environment variables
type Config struct {
	App   AppConfig
	VNPay VNPayConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type VNPayConfig struct {
	TmnCode       string // Merchant Code (e.g., "DEMOV01")
	HashSecret    string // Secret key for HMAC-SHA512
	PaymentURL    string // VNPay payment page URL
	ReturnURL     string // Frontend callback URL
	Locale        string // vn or en
	ExpireMinutes int    // Payment page lifetime
}

// ExpireAfter returns the payment page lifetime
func (c VNPayConfig) ExpireAfter() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Payment Gateway"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		VNPay: VNPayConfig{
			TmnCode:       getEnv("VNPAY_TMN_CODE", ""),
			HashSecret:    getEnv("VNPAY_HASH_SECRET", ""),
			PaymentURL:    getEnv("VNPAY_PAYMENT_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"),
			ReturnURL:     getEnv("VNPAY_RETURN_URL", "http://localhost:3000/payment/callback"),
			Locale:        getEnv("VNPAY_LOCALE", "vn"),
			ExpireMinutes: getEnvInt("VNPAY_EXPIRE_MINUTES", 15),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Environment, validation.In("development", "staging", "production")),
		validation.Field(&c.App.Port, validation.Required, is.Port),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := validation.ValidateStruct(&c.VNPay,
		validation.Field(&c.VNPay.TmnCode, validation.Required),
		validation.Field(&c.VNPay.HashSecret, validation.Required),
		validation.Field(&c.VNPay.PaymentURL, validation.Required, is.URL),
		validation.Field(&c.VNPay.ReturnURL, validation.Required, is.URL),
		validation.Field(&c.VNPay.Locale, validation.In("vn", "en")),
		validation.Field(&c.VNPay.ExpireMinutes, validation.Required, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("vnpay: %w", err)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
