package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// VNPay flow metrics
	paymentURLsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vnpay_payment_urls_total",
		Help: "Total VNPay payment URL requests",
	}, []string{
		"result", // created, rejected, gateway_error
	})

	callbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vnpay_callbacks_total",
		Help: "Total VNPay callbacks by kind and signature outcome",
	}, []string{
		"kind",      // return, ipn
		"signature", // valid, invalid
	})

	ipnAcksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vnpay_ipn_acks_total",
		Help: "IPN acknowledgements sent back to VNPay",
	}, []string{
		"rsp_code",
	})

	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

const (
	ResultCreated      = "created"
	ResultRejected     = "rejected"
	ResultGatewayError = "gateway_error"

	KindReturn = "return"
	KindIPN    = "ipn"
)

// RecordPaymentURL counts one CreatePayment outcome
func RecordPaymentURL(result string) {
	paymentURLsTotal.WithLabelValues(result).Inc()
}

// RecordCallback counts a verified or rejected callback
func RecordCallback(kind string, valid bool) {
	signature := "invalid"
	if valid {
		signature = "valid"
	}
	callbacksTotal.WithLabelValues(kind, signature).Inc()
}

// RecordIPNAck counts the RspCode returned to VNPay
func RecordIPNAck(rspCode string) {
	ipnAcksTotal.WithLabelValues(rspCode).Inc()
}

// Middleware records request count and latency per matched route.
// Unmatched paths are grouped under "unmatched" to keep label cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
