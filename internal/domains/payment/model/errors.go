package model

import (
	"errors"
	"fmt"
)

// =====================================================
// PREDEFINED ERRORS
// =====================================================

var (
	ErrInvalidSignature      = errors.New("invalid VNPay signature")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyConfirmed = errors.New("order already confirmed")
	ErrAmountMismatch        = errors.New("paid amount does not match order total")
)

// =====================================================
// CUSTOM PAYMENT ERROR
// =====================================================

type PaymentError struct {
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new payment error
func NewPaymentError(code, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =====================================================
// ERROR CONSTRUCTORS
// =====================================================

func NewInvalidRequestError(err error) *PaymentError {
	return NewPaymentError(ErrCodeInvalidRequest, "Invalid payment request", err)
}

func NewGatewayUnavailableError(err error) *PaymentError {
	return NewPaymentError(ErrCodeGatewayUnavailable, "Payment gateway unavailable", err)
}

func NewInvalidSignatureError() *PaymentError {
	return NewPaymentError(
		ErrCodeInvalidSignature,
		"Invalid VNPay signature - possible tampering",
		ErrInvalidSignature,
	)
}

func NewOrderNotFoundError(orderID int64) *PaymentError {
	return NewPaymentError(
		ErrCodeOrderNotFound,
		fmt.Sprintf("Order not found: %d", orderID),
		ErrOrderNotFound,
	)
}
