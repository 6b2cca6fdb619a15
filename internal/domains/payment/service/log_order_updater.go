package service

import (
	"context"

	"github.com/shopspring/decimal"

	"payment-gateway/pkg/logger"
)

// LogOrderUpdater records payment outcomes in the log only.
// Used when no order subsystem is attached to this process.
type LogOrderUpdater struct{}

func (LogOrderUpdater) MarkPaid(ctx context.Context, orderID int64, amount decimal.Decimal, transactionNo string) error {
	logger.Info("Order paid", map[string]interface{}{
		"order_id":       orderID,
		"amount":         amount.String(),
		"transaction_no": transactionNo,
	})
	return nil
}

func (LogOrderUpdater) MarkFailed(ctx context.Context, orderID int64, responseCode, reason string) error {
	logger.Info("Order payment failed", map[string]interface{}{
		"order_id":      orderID,
		"response_code": responseCode,
		"reason":        reason,
	})
	return nil
}
