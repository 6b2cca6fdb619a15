package gateway

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
)

// =====================================================
// GATEWAY INTERFACES
// =====================================================

// VNPayGateway interface for VNPay payment gateway integration
type VNPayGateway interface {
	// CreatePaymentURL generates a signed VNPay redirect URL
	CreatePaymentURL(ctx context.Context, req VNPayPaymentRequest) (string, error)

	// VerifyCallback authenticates return-URL and IPN query parameters
	VerifyCallback(query url.Values) *VNPayCallbackResult

	// GetReturnURL gets frontend return URL
	GetReturnURL() string
}

// =====================================================
// REQUEST/RESULT TYPES
// =====================================================

// VNPayPaymentRequest request to create VNPay payment
type VNPayPaymentRequest struct {
	OrderID   int64           // Internal order id, encoded into vnp_TxnRef
	Amount    decimal.Decimal // Order total in VND
	OrderInfo string          // Description shown on the payment page
	ClientIP  string          // Customer IP (vnp_IpAddr)
	ReturnURL string          // Optional override of the configured return URL
	BankCode  string          // Optional, preselects a bank
	Locale    string          // Optional override: vn or en
}

// VNPayCallbackResult is what the order side needs from a VNPay callback
type VNPayCallbackResult struct {
	Valid             bool              // Signature matched
	Fields            map[string]string // Every received field, signature included
	TxnRef            string
	OrderID           int64 // 0 when vnp_TxnRef is malformed
	Amount            decimal.Decimal
	ResponseCode      string
	TransactionStatus string
	TransactionNo     string
	BankCode          string
	PayDate           string
	Message           string // Vietnamese message for ResponseCode
	Success           bool   // ResponseCode == "00"
}

// Paid reports whether the callback proves a completed payment
func (r *VNPayCallbackResult) Paid() bool {
	if r == nil || !r.Valid || !r.Success {
		return false
	}
	return r.TransactionStatus == "" || r.TransactionStatus == "00"
}
