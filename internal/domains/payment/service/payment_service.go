package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"payment-gateway/internal/domains/payment/gateway"
	"payment-gateway/internal/domains/payment/model"
	"payment-gateway/pkg/logger"
	"payment-gateway/pkg/metrics"
)

// =====================================================
// PAYMENT SERVICE IMPLEMENTATION
// =====================================================
type paymentService struct {
	vnpayGateway gateway.VNPayGateway
	orders       OrderStatusUpdater
	now          func() time.Time
}

func NewPaymentService(
	vnpayGateway gateway.VNPayGateway,
	orders OrderStatusUpdater,
) PaymentService {
	return &paymentService{
		vnpayGateway: vnpayGateway,
		orders:       orders,
		now:          time.Now,
	}
}

// =====================================================
// CREATE PAYMENT
// =====================================================

// CreatePayment initiates a VNPay payment for an order
//
// Flow:
// 1. Validate request
// 2. Default the order description
// 3. Ask the gateway for a signed redirect URL
//
// Whether the order may be paid at all is decided by the caller.
func (s *paymentService) CreatePayment(
	ctx context.Context,
	req model.CreatePaymentRequest,
) (*model.CreatePaymentResponse, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordPaymentURL(metrics.ResultRejected)
		return nil, model.NewInvalidRequestError(err)
	}

	orderInfo := req.OrderInfo
	if orderInfo == "" {
		orderInfo = fmt.Sprintf("Thanh toan don hang %d", req.OrderID)
	}

	paymentURL, err := s.vnpayGateway.CreatePaymentURL(ctx, gateway.VNPayPaymentRequest{
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		OrderInfo: orderInfo,
		ClientIP:  req.ClientIP,
		BankCode:  req.BankCode,
		Locale:    req.Locale,
	})
	if err != nil {
		logger.Error("Failed to generate VNPay URL", err)
		metrics.RecordPaymentURL(metrics.ResultGatewayError)
		return nil, model.NewGatewayUnavailableError(err)
	}
	metrics.RecordPaymentURL(metrics.ResultCreated)

	return &model.CreatePaymentResponse{
		OrderID:    req.OrderID,
		Gateway:    model.GatewayVNPay,
		Amount:     req.Amount,
		Currency:   model.DefaultCurrency,
		PaymentURL: paymentURL,
		CreatedAt:  s.now(),
	}, nil
}

// =====================================================
// RETURN URL
// =====================================================

func (s *paymentService) HandleReturn(
	ctx context.Context,
	query url.Values,
) (*model.PaymentResultResponse, error) {
	result := s.vnpayGateway.VerifyCallback(query)
	metrics.RecordCallback(metrics.KindReturn, result.Valid)
	if !result.Valid {
		return nil, model.NewInvalidSignatureError()
	}
	if result.OrderID == 0 {
		return nil, model.NewOrderNotFoundError(result.OrderID)
	}

	status := model.PaymentStatusFailed
	if result.Paid() {
		status = model.PaymentStatusSuccess
	}

	return &model.PaymentResultResponse{
		OrderID:       result.OrderID,
		Status:        status,
		Amount:        result.Amount,
		ResponseCode:  result.ResponseCode,
		Message:       result.Message,
		TransactionNo: result.TransactionNo,
		BankCode:      result.BankCode,
		PayDate:       result.PayDate,
		Fields:        result.Fields,
	}, nil
}

// =====================================================
// IPN
// =====================================================

// HandleIPN processes a VNPay IPN callback
//
// Flow:
// 1. Verify signature (97 on mismatch)
// 2. Recover order id from vnp_TxnRef (01 when unparseable)
// 3. Forward paid/failed outcome to the order side
// 4. Map the order side's answer to RspCode
//
// Order id 0 is the parse sentinel and is never forwarded.
func (s *paymentService) HandleIPN(
	ctx context.Context,
	query url.Values,
) model.IPNResponse {
	ack := s.processIPN(ctx, query)
	metrics.RecordIPNAck(ack.RspCode)
	return ack
}

func (s *paymentService) processIPN(ctx context.Context, query url.Values) model.IPNResponse {
	result := s.vnpayGateway.VerifyCallback(query)
	metrics.RecordCallback(metrics.KindIPN, result.Valid)
	if !result.Valid {
		return model.IPNResponse{RspCode: model.IPNCodeInvalidSignature, Message: "Invalid signature"}
	}

	if result.OrderID == 0 {
		logger.Warn("VNPay IPN with unparseable txn ref", map[string]interface{}{
			"txn_ref": result.TxnRef,
		})
		return model.IPNResponse{RspCode: model.IPNCodeOrderNotFound, Message: "Order not found"}
	}

	var err error
	if result.Paid() {
		err = s.orders.MarkPaid(ctx, result.OrderID, result.Amount, result.TransactionNo)
	} else {
		err = s.orders.MarkFailed(ctx, result.OrderID, result.ResponseCode, result.Message)
	}

	switch {
	case err == nil:
		logger.Info("VNPay IPN processed", map[string]interface{}{
			"order_id":       result.OrderID,
			"response_code":  result.ResponseCode,
			"transaction_no": result.TransactionNo,
			"paid":           result.Paid(),
		})
		return model.IPNResponse{RspCode: model.IPNCodeConfirmed, Message: "Confirm Success"}
	case errors.Is(err, model.ErrOrderNotFound):
		return model.IPNResponse{RspCode: model.IPNCodeOrderNotFound, Message: "Order not found"}
	case errors.Is(err, model.ErrOrderAlreadyConfirmed):
		return model.IPNResponse{RspCode: model.IPNCodeAlreadyConfirmed, Message: "Order already confirmed"}
	case errors.Is(err, model.ErrAmountMismatch):
		return model.IPNResponse{RspCode: model.IPNCodeInvalidAmount, Message: "Invalid amount"}
	default:
		logger.Error("VNPay IPN processing failed", err)
		return model.IPNResponse{RspCode: model.IPNCodeUnknownError, Message: "Unknown error"}
	}
}
