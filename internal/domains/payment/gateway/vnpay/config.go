package vnpay

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// VNPAY CONFIGURATION
// =====================================================

type Config struct {
	TmnCode     string        // Merchant code (provided by VNPay)
	HashSecret  string        // Secret key for HMAC-SHA512 signature
	PaymentURL  string        // Full payment page URL, e.g. https://sandbox.vnpayment.vn/paymentv2/vpcpay.html
	ReturnURL   string        // Frontend callback URL
	Version     string        // VNPay API version (default: "2.1.0")
	Command     string        // Command type (default: "pay")
	CurrCode    string        // Currency code (default: "VND")
	Locale      string        // Language (default: "vn")
	OrderType   string        // Goods category (default: "other")
	ExpireAfter time.Duration // Payment page lifetime (default: 15m)
}

// NewConfig creates VNPay configuration with provider defaults
func NewConfig(tmnCode, hashSecret, paymentURL, returnURL string) *Config {
	return &Config{
		TmnCode:     tmnCode,
		HashSecret:  hashSecret,
		PaymentURL:  paymentURL,
		ReturnURL:   returnURL,
		Version:     "2.1.0",
		Command:     "pay",
		CurrCode:    "VND",
		Locale:      "vn",
		OrderType:   "other",
		ExpireAfter: 15 * time.Minute,
	}
}

// Validate validates configuration
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TmnCode, validation.Required),
		validation.Field(&c.HashSecret, validation.Required),
		validation.Field(&c.PaymentURL, validation.Required, is.URL),
		validation.Field(&c.ReturnURL, validation.Required, is.URL),
		validation.Field(&c.Version, validation.Required),
		validation.Field(&c.Command, validation.Required),
		validation.Field(&c.CurrCode, validation.Required),
		validation.Field(&c.Locale, validation.In("vn", "en")),
		validation.Field(&c.ExpireAfter, validation.Min(time.Minute)),
	)
}
