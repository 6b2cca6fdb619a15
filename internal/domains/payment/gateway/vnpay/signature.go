package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// =====================================================
// VNPAY SIGNATURE
// =====================================================

const (
	// FieldSecureHash carries the HMAC-SHA512 signature
	FieldSecureHash = "vnp_SecureHash"
	// FieldSecureHashType is signature metadata sent back by some callbacks
	FieldSecureHashType = "vnp_SecureHashType"
)

// Sign computes HMAC-SHA512 over canonical keyed by secretKey and returns
// 128 lowercase hex characters.
func Sign(secretKey, canonical string) string {
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// stripSignature returns a copy of params without the two signature fields
func stripSignature(params Params) Params {
	unsigned := params.Clone()
	unsigned.Del(FieldSecureHash)
	unsigned.Del(FieldSecureHashType)
	return unsigned
}

// SignParams returns a copy of params with vnp_SecureHash attached.
// Any signature already present in params is replaced.
func SignParams(params Params, secretKey string) Params {
	signed := stripSignature(params)
	signed[FieldSecureHash] = Sign(secretKey, signed.Encode())
	return signed
}

// BuildPaymentURL canonicalizes params, signs the result and appends the
// signature: baseURL?<canonical>&vnp_SecureHash=<hex>.
//
// The output only depends on the logical content of params, never on the
// order fields were added.
func BuildPaymentURL(baseURL string, params Params, secretKey string) string {
	query := stripSignature(params).Encode()
	signature := Sign(secretKey, query)

	if query == "" {
		return baseURL + "?" + FieldSecureHash + "=" + signature
	}
	return baseURL + "?" + query + "&" + FieldSecureHash + "=" + signature
}

// VerifySignature checks a callback signed by VNPay.
//
// The signature fields are removed, the rest is re-encoded and re-signed and the
// result compared with the received vnp_SecureHash regardless of hex case.
// Any irregularity (no signature, no other fields, bad hex) yields false.
func VerifySignature(received Params, secretKey string) bool {
	receivedHash := received.Get(FieldSecureHash)
	if receivedHash == "" {
		return false
	}

	canonical := stripSignature(received).Encode()
	if canonical == "" {
		return false
	}

	given, err := hex.DecodeString(receivedHash)
	if err != nil {
		return false
	}

	expected, err := hex.DecodeString(Sign(secretKey, canonical))
	if err != nil {
		return false
	}

	return hmac.Equal(given, expected)
}
