package service

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"payment-gateway/internal/domains/payment/model"
)

type PaymentService interface {
	// CreatePayment builds the signed VNPay redirect URL for an order
	CreatePayment(ctx context.Context, req model.CreatePaymentRequest) (*model.CreatePaymentResponse, error)

	// HandleReturn verifies the browser return from VNPay. Display only, no state change.
	HandleReturn(ctx context.Context, query url.Values) (*model.PaymentResultResponse, error)

	// HandleIPN verifies a server-to-server notification and forwards the
	// outcome to the order side. Always returns an acknowledgement for VNPay.
	HandleIPN(ctx context.Context, query url.Values) model.IPNResponse
}

// OrderStatusUpdater is implemented by the order subsystem.
//
// Implementations report model.ErrOrderNotFound, model.ErrOrderAlreadyConfirmed
// or model.ErrAmountMismatch so the IPN acknowledgement carries the right code.
type OrderStatusUpdater interface {
	MarkPaid(ctx context.Context, orderID int64, amount decimal.Decimal, transactionNo string) error
	MarkFailed(ctx context.Context, orderID int64, responseCode, reason string) error
}
