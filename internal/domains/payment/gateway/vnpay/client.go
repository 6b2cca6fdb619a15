package vnpay

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"payment-gateway/internal/domains/payment/gateway"
	"payment-gateway/pkg/logger"
)

// VNPay reads vnp_CreateDate and vnp_ExpireDate as GMT+7 wall clock
var vnpayZone = time.FixedZone("ICT", 7*60*60)

const dateLayout = "20060102150405"

// =====================================================
// VNPAY CLIENT
// =====================================================

type Client struct {
	config *Config
	now    func() time.Time
}

func NewClient(config *Config) (gateway.VNPayGateway, error) {
	if config == nil {
		return nil, fmt.Errorf("invalid VNPay config: nil")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid VNPay config: %w", err)
	}

	return &Client{
		config: config,
		now:    time.Now,
	}, nil
}

// =====================================================
// CREATE PAYMENT URL
// =====================================================

func (c *Client) CreatePaymentURL(
	ctx context.Context,
	req gateway.VNPayPaymentRequest,
) (string, error) {
	if err := validatePaymentRequest(req); err != nil {
		return "", fmt.Errorf("invalid VNPay payment request: %w", err)
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = c.config.ReturnURL
	}
	locale := req.Locale
	if locale == "" {
		locale = c.config.Locale
	}

	now := c.now().In(vnpayZone)
	txnRef := NewTxnRef(req.OrderID, now)

	params := NewParams()
	params.Set("vnp_Version", c.config.Version)
	params.Set("vnp_Command", c.config.Command)
	params.Set("vnp_TmnCode", c.config.TmnCode)
	params.Set("vnp_Amount", FormatScaled(req.Amount))
	params.Set("vnp_CurrCode", c.config.CurrCode)
	params.Set("vnp_TxnRef", txnRef)
	params.Set("vnp_OrderInfo", req.OrderInfo)
	params.Set("vnp_OrderType", c.config.OrderType)
	params.Set("vnp_Locale", locale)
	params.Set("vnp_ReturnUrl", returnURL)
	params.Set("vnp_IpAddr", normalizeIP(req.ClientIP))
	params.Set("vnp_CreateDate", now.Format(dateLayout))
	params.Set("vnp_ExpireDate", now.Add(c.config.ExpireAfter).Format(dateLayout))
	params.Set("vnp_BankCode", req.BankCode)

	paymentURL := BuildPaymentURL(c.config.PaymentURL, params, c.config.HashSecret)

	logger.Info("VNPay payment URL created", map[string]interface{}{
		"order_id": req.OrderID,
		"txn_ref":  txnRef,
		"amount":   params.Get("vnp_Amount"),
	})

	return paymentURL, nil
}

func validatePaymentRequest(req gateway.VNPayPaymentRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.Amount, validation.By(amountInRange)),
		validation.Field(&req.OrderInfo, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.ClientIP, is.IP),
		validation.Field(&req.ReturnURL, is.URL),
		validation.Field(&req.Locale, validation.In("vn", "en")),
	)
}

func amountInRange(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return fmt.Errorf("must be a decimal amount")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("must be positive")
	}
	if amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("must not exceed %s", MaxAmount)
	}
	return nil
}

// normalizeIP maps loopback and missing addresses to the IPv4 form VNPay accepts
func normalizeIP(ip string) string {
	if ip == "" {
		return "127.0.0.1"
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "127.0.0.1"
	}
	if parsed.IsLoopback() {
		return "127.0.0.1"
	}
	if v4 := parsed.To4(); v4 != nil {
		return v4.String()
	}
	return parsed.String()
}

// =====================================================
// VERIFY CALLBACK
// =====================================================

// VerifyCallback authenticates a return-URL or IPN query and decodes the
// fields the order side needs. It never fails: a bad signature only sets Valid=false.
func (c *Client) VerifyCallback(query url.Values) *gateway.VNPayCallbackResult {
	params := FromValues(query)
	valid := VerifySignature(params, c.config.HashSecret)

	code := params.Get("vnp_ResponseCode")
	status := TranslateResponseCode(code)
	txnRef := params.Get("vnp_TxnRef")

	result := &gateway.VNPayCallbackResult{
		Valid:             valid,
		Fields:            params.Clone(),
		TxnRef:            txnRef,
		OrderID:           ParseTxnRef(txnRef),
		Amount:            FromScaled(params.Get("vnp_Amount")),
		ResponseCode:      code,
		TransactionStatus: params.Get("vnp_TransactionStatus"),
		TransactionNo:     params.Get("vnp_TransactionNo"),
		BankCode:          params.Get("vnp_BankCode"),
		PayDate:           params.Get("vnp_PayDate"),
		Message:           status.Message,
		Success:           status.Success,
	}

	if !valid {
		logger.Warn("VNPay callback signature mismatch", map[string]interface{}{
			"txn_ref":       txnRef,
			"response_code": code,
		})
	}

	return result
}

func (c *Client) GetReturnURL() string {
	return c.config.ReturnURL
}
