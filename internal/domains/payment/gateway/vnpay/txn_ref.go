package vnpay

import (
	"strconv"
	"strings"
	"time"
)

const txnRefSeparator = "_"

// GenerateTxnRef builds vnp_TxnRef as "<orderID>_<unix seconds now>".
// The timestamp keeps retried payments for the same order unique on VNPay's side.
func GenerateTxnRef(orderID int64) string {
	return NewTxnRef(orderID, time.Now())
}

// NewTxnRef builds vnp_TxnRef for orderID at the given instant
func NewTxnRef(orderID int64, at time.Time) string {
	return strconv.FormatInt(orderID, 10) + txnRefSeparator + strconv.FormatInt(at.Unix(), 10)
}

// ParseTxnRef recovers the order ID from a vnp_TxnRef. The timestamp is discarded.
//
// A ref without separator or with a non-numeric prefix returns 0. Callers
// cannot tell that sentinel apart from a real order 0.
func ParseTxnRef(ref string) int64 {
	head, _, found := strings.Cut(ref, txnRefSeparator)
	if !found {
		return 0
	}

	orderID, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0
	}
	return orderID
}
