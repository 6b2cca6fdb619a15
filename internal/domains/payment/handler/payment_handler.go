package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"payment-gateway/internal/domains/payment/model"
	"payment-gateway/internal/domains/payment/service"
	"payment-gateway/internal/shared/middleware"
	res "payment-gateway/internal/shared/response"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates new payment handler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// =====================================================
// PAYMENT ENDPOINTS
// =====================================================

// CreateVNPayPayment creates a signed VNPay redirect URL
// POST /api/v1/payments/vnpay
func (h *PaymentHandler) CreateVNPayPayment(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	// Step 2: Client IP comes from middleware, never from the body
	req.ClientIP = middleware.GetClientIPFromContext(c.Request.Context())

	// Step 3: Call service
	response, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapPaymentError(err)

		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			res.ErrorWithDetails(c, statusCode, errCode, "Invalid payment request", fieldErrs)
			return
		}
		res.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	res.Success(c, http.StatusCreated, response)
}

// VNPayReturn verifies the browser redirect back from VNPay
// GET /api/v1/payments/vnpay/return
func (h *PaymentHandler) VNPayReturn(c *gin.Context) {
	response, err := h.paymentService.HandleReturn(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		statusCode, errCode := mapPaymentError(err)
		res.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	res.Success(c, http.StatusOK, response)
}

// =====================================================
// WEBHOOK ENDPOINTS
// =====================================================

// VNPayIPN handles VNPay IPN callback
// GET /api/v1/webhooks/vnpay
//
// VNPay reads only the JSON body, so the HTTP status is always 200.
func (h *PaymentHandler) VNPayIPN(c *gin.Context) {
	ack := h.paymentService.HandleIPN(c.Request.Context(), c.Request.URL.Query())
	c.JSON(http.StatusOK, ack)
}

// =====================================================
// ERROR MAPPING HELPER
// =====================================================

func mapPaymentError(err error) (statusCode int, errorCode string) {
	var paymentErr *model.PaymentError
	if !errors.As(err, &paymentErr) {
		return http.StatusInternalServerError, model.ErrCodeInternalError
	}

	switch paymentErr.Code {
	case model.ErrCodeInvalidRequest:
		statusCode = http.StatusBadRequest
	case model.ErrCodeInvalidSignature:
		statusCode = http.StatusBadRequest
	case model.ErrCodeOrderNotFound:
		statusCode = http.StatusNotFound
	case model.ErrCodeGatewayUnavailable:
		statusCode = http.StatusServiceUnavailable
	default:
		statusCode = http.StatusInternalServerError
	}

	return statusCode, paymentErr.Code
}
