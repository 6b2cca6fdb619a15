package mock

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"payment-gateway/internal/domains/payment/gateway"
)

// =====================================================
// MOCK VNPAY GATEWAY FOR TESTING
// =====================================================

type MockVNPayGateway struct {
	returnURL         string
	shouldFailPayment bool
	callbackResult    *gateway.VNPayCallbackResult

	// LastRequest records the most recent CreatePaymentURL call
	LastRequest *gateway.VNPayPaymentRequest
}

func NewMockVNPayGateway(returnURL string) *MockVNPayGateway {
	return &MockVNPayGateway{
		returnURL: returnURL,
	}
}

func (m *MockVNPayGateway) CreatePaymentURL(
	ctx context.Context,
	req gateway.VNPayPaymentRequest,
) (string, error) {
	m.LastRequest = &req
	if m.shouldFailPayment {
		return "", fmt.Errorf("mock payment creation failed")
	}

	mockURL := fmt.Sprintf(
		"https://mock-vnpay.example/payment?orderId=%s&amount=%s&returnUrl=%s",
		strconv.FormatInt(req.OrderID, 10),
		req.Amount.StringFixed(0),
		url.QueryEscape(m.returnURL),
	)

	return mockURL, nil
}

// VerifyCallback returns the result set with SetCallbackResult, or an invalid
// result when none was set
func (m *MockVNPayGateway) VerifyCallback(query url.Values) *gateway.VNPayCallbackResult {
	if m.callbackResult != nil {
		return m.callbackResult
	}
	return &gateway.VNPayCallbackResult{Valid: false}
}

func (m *MockVNPayGateway) GetReturnURL() string {
	return m.returnURL
}

// SetFailPayment sets whether payment creation should fail
func (m *MockVNPayGateway) SetFailPayment(shouldFail bool) {
	m.shouldFailPayment = shouldFail
}

// SetCallbackResult fixes what VerifyCallback returns
func (m *MockVNPayGateway) SetCallbackResult(result *gateway.VNPayCallbackResult) {
	m.callbackResult = result
}
