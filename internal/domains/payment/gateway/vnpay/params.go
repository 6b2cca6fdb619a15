package vnpay

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

// =====================================================
// VNPAY PARAMETER MAP & CANONICAL ENCODING
// =====================================================

// Params holds vnp_* fields keyed by their provider-defined names.
//
// Iteration order is never taken from the map itself: Keys and Encode always
// sort keys by byte value, which for UTF-8 is code-point order and does not
// depend on any locale.
type Params map[string]string

// NewParams returns an empty parameter map
func NewParams() Params {
	return make(Params)
}

// FromValues copies the first value of every query key into a Params.
// Empty values are dropped the same way Set drops them.
func FromValues(values url.Values) Params {
	p := make(Params, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			p.Set(key, vals[0])
		}
	}
	return p
}

// Set stores value under key. An empty value is ignored so that an absent
// field never shows up as "key=" in the signed string.
func (p Params) Set(key, value string) {
	if value == "" {
		return
	}
	p[key] = value
}

// Get returns the value for key, or "" when absent
func (p Params) Get(key string) string {
	return p[key]
}

// Del removes key
func (p Params) Del(key string) {
	delete(p, key)
}

// Clone returns an independent copy
func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Keys returns the keys in ascending byte order
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Encode builds the canonical query string that both sides sign:
// sorted keys, each key and value percent-encoded, spaces as '+',
// pairs joined by '&' with no trailing separator. Empty values are skipped.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, key := range p.Keys() {
		value := p[key]
		if value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(encodeComponent(key))
		sb.WriteByte('=')
		sb.WriteString(encodeComponent(value))
	}
	return sb.String()
}

// encodeComponent percent-encodes s over its UTF-8 bytes.
// Only A-Z a-z 0-9 and "-_.~" stay literal, hex digits are uppercase and a
// space becomes '+'. VNPay computes its own hash over exactly this form.
func encodeComponent(s string) string {
	encoded := url.QueryEscape(s)
	// space must be '+', never %20
	return strings.ReplaceAll(encoded, "%20", "+")
}
