package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"payment-gateway/internal/domains/payment/gateway/vnpay"
)

// =====================================================
// CREATE PAYMENT REQUEST/RESPONSE
// =====================================================

type CreatePaymentRequest struct {
	OrderID   int64           `json:"order_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	OrderInfo string          `json:"order_info"`
	BankCode  string          `json:"bank_code"`
	Locale    string          `json:"locale"`

	// Filled from request context, never from the body
	ClientIP string `json:"-"`
}

func (r CreatePaymentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Amount, validation.By(validateAmount)),
		validation.Field(&r.OrderInfo, validation.Length(0, 255)),
		validation.Field(&r.BankCode, validation.Length(0, 20)),
		validation.Field(&r.Locale, validation.In("vn", "en")),
	)
}

// validateAmount keeps amounts inside what vnp_Amount can carry exactly:
// positive, at most vnpay.MaxAmount, at most two decimal places
func validateAmount(value interface{}) error {
	amount, _ := value.(decimal.Decimal)
	switch {
	case !amount.IsPositive():
		return validation.NewError("validation_amount_positive", "must be positive")
	case amount.GreaterThan(vnpay.MaxAmount):
		return validation.NewError("validation_amount_max", "must not exceed "+vnpay.MaxAmount.String())
	case !amount.Equal(amount.Truncate(2)):
		return validation.NewError("validation_amount_precision", "must have at most 2 decimal places")
	}
	return nil
}

type CreatePaymentResponse struct {
	OrderID    int64           `json:"order_id"`
	Gateway    string          `json:"gateway"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	PaymentURL string          `json:"payment_url"`
	CreatedAt  time.Time       `json:"created_at"`
}

// =====================================================
// CALLBACK RESULT (return URL)
// =====================================================

type PaymentResultResponse struct {
	OrderID       int64             `json:"order_id"`
	Status        string            `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	ResponseCode  string            `json:"response_code"`
	Message       string            `json:"message"`
	TransactionNo string            `json:"transaction_no,omitempty"`
	BankCode      string            `json:"bank_code,omitempty"`
	PayDate       string            `json:"pay_date,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
}

// =====================================================
// IPN ACKNOWLEDGEMENT
// =====================================================

// IPNResponse is the body VNPay expects back from the IPN endpoint
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}
