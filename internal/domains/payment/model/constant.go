package model

// =====================================================
// PAYMENT GATEWAYS
// =====================================================
const (
	GatewayVNPay = "vnpay"
)

// =====================================================
// PAYMENT STATUS
// =====================================================
const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// =====================================================
// INTERNAL ERROR CODES
// =====================================================
const (
	ErrCodeInvalidRequest     = "PAY001"
	ErrCodeGatewayUnavailable = "PAY016"
	ErrCodeInvalidSignature   = "PAY012"
	ErrCodeOrderNotFound      = "PAY025"
	ErrCodeInternalError      = "PAY024"
)

// =====================================================
// IPN ACKNOWLEDGEMENT CODES (RspCode sent back to VNPay)
// =====================================================
const (
	IPNCodeConfirmed        = "00"
	IPNCodeOrderNotFound    = "01"
	IPNCodeAlreadyConfirmed = "02"
	IPNCodeInvalidAmount    = "04"
	IPNCodeInvalidSignature = "97"
	IPNCodeUnknownError     = "99"
)

// =====================================================
// PAYMENT CONFIGURATION
// =====================================================
const (
	DefaultCurrency = "VND"
)
