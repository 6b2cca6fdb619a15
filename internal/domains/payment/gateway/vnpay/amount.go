package vnpay

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var scale = decimal.NewFromInt(100)

// MaxAmount is the largest VND amount the wire format carries
var MaxAmount = decimal.RequireFromString("999999999.99")

// ToScaled converts a VND amount to VNPay's wire integer (amount * 100).
// Digits beyond the second fractional place are truncated toward zero, not rounded.
// Example: 100,000 VND -> 10000000
func ToScaled(amount decimal.Decimal) int64 {
	return amount.Mul(scale).Truncate(0).IntPart()
}

// FormatScaled renders ToScaled(amount) as the vnp_Amount string
func FormatScaled(amount decimal.Decimal) string {
	return strconv.FormatInt(ToScaled(amount), 10)
}

// FromScaled parses a vnp_Amount value back to VND.
//
// Unparseable input returns decimal.Zero instead of an error, so a malformed
// callback never breaks the webhook path. Zero is therefore ambiguous with a
// real zero amount and must not be read as "field absent".
func FromScaled(text string) decimal.Decimal {
	scaled, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return decimal.Zero
	}
	return decimal.New(scaled, -2)
}
