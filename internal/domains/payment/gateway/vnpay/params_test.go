package vnpay

import (
	"math/rand"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePaymentParams is a realistic outbound parameter set
func samplePaymentParams() Params {
	p := NewParams()
	p.Set("vnp_Version", "2.1.0")
	p.Set("vnp_Command", "pay")
	p.Set("vnp_TmnCode", "DEMOV01")
	p.Set("vnp_Amount", "1000000")
	p.Set("vnp_CurrCode", "VND")
	p.Set("vnp_TxnRef", "42_1700000000")
	p.Set("vnp_OrderInfo", "Thanh toan don hang 42")
	p.Set("vnp_OrderType", "other")
	p.Set("vnp_Locale", "vn")
	p.Set("vnp_ReturnUrl", "https://shop.example.vn/payment/callback?src=app&lang=vi")
	p.Set("vnp_IpAddr", "127.0.0.1")
	p.Set("vnp_CreateDate", "20231115052000")
	return p
}

const sampleCanonical = "vnp_Amount=1000000&vnp_Command=pay&vnp_CreateDate=20231115052000" +
	"&vnp_CurrCode=VND&vnp_IpAddr=127.0.0.1&vnp_Locale=vn" +
	"&vnp_OrderInfo=Thanh+toan+don+hang+42&vnp_OrderType=other" +
	"&vnp_ReturnUrl=https%3A%2F%2Fshop.example.vn%2Fpayment%2Fcallback%3Fsrc%3Dapp%26lang%3Dvi" +
	"&vnp_TmnCode=DEMOV01&vnp_TxnRef=42_1700000000&vnp_Version=2.1.0"

func TestParams_SetIgnoresEmptyValue(t *testing.T) {
	p := NewParams()
	p.Set("vnp_BankCode", "")
	p.Set("vnp_Amount", "100")

	_, exists := p["vnp_BankCode"]
	assert.False(t, exists, "empty value must not create an entry")
	assert.Equal(t, "vnp_Amount=100", p.Encode())
}

func TestParams_EncodeSkipsEmptyValuesFromLiteral(t *testing.T) {
	p := Params{"a": "1", "b": "", "c": "3"}

	assert.Equal(t, "a=1&c=3", p.Encode(), "no 'b=' artifact")
}

func TestParams_EncodeEmpty(t *testing.T) {
	assert.Equal(t, "", NewParams().Encode())
	assert.Equal(t, "", Params{"a": ""}.Encode())
}

func TestParams_EncodeGolden(t *testing.T) {
	assert.Equal(t, sampleCanonical, samplePaymentParams().Encode())
}

func TestParams_EncodeOrdinalKeyOrder(t *testing.T) {
	p := Params{"b": "2", "B": "1", "a": "x y", "_z": "k", "é": "v"}

	// byte order: 'B' < '_' < 'a' < 'b' < 0xC3
	assert.Equal(t, "B=1&_z=k&a=x+y&b=2&%C3%A9=v", p.Encode())
	assert.Equal(t, []string{"B", "_z", "a", "b", "é"}, p.Keys())
}

func TestEncodeComponent(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "space becomes plus", input: "a b  c", expected: "a+b++c"},
		{name: "ampersand escaped", input: "a&b", expected: "a%26b"},
		{name: "equals escaped", input: "k=v", expected: "k%3Dv"},
		{name: "plus escaped", input: "1+1", expected: "1%2B1"},
		{name: "unreserved kept", input: "AZaz09-_.~", expected: "AZaz09-_.~"},
		{name: "sub-delims escaped", input: "*()!'", expected: "%2A%28%29%21%27"},
		{name: "url", input: "https://a.vn/x?y=1", expected: "https%3A%2F%2Fa.vn%2Fx%3Fy%3D1"},
		{name: "vietnamese utf8", input: "Đơn hàng ~ số 1", expected: "%C4%90%C6%A1n+h%C3%A0ng+~+s%E1%BB%91+1"},
		{name: "percent escaped", input: "100%", expected: "100%25"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, encodeComponent(tc.input))
		})
	}
}

func TestParams_EncodeSpaceAndAmpersand(t *testing.T) {
	p := Params{"vnp_OrderInfo": "Tra tien & nhan hang"}

	encoded := p.Encode()
	assert.Equal(t, "vnp_OrderInfo=Tra+tien+%26+nhan+hang", encoded)
	assert.NotContains(t, encoded, "%20")
	assert.NotContains(t, encoded[len("vnp_OrderInfo="):], "&")
}

func TestParams_EncodeIndependentOfInsertionOrder(t *testing.T) {
	source := samplePaymentParams()
	keys := source.Keys()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		shuffled := append([]string(nil), keys...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		p := NewParams()
		for _, k := range shuffled {
			p.Set(k, source[k])
		}
		require.Equal(t, sampleCanonical, p.Encode(), "permutation %v", shuffled)
	}
}

func TestFromValues(t *testing.T) {
	values := url.Values{
		"vnp_Amount":   {"1000000", "ignored"},
		"vnp_BankCode": {""},
		"vnp_Empty":    {},
	}

	p := FromValues(values)

	assert.Equal(t, Params{"vnp_Amount": "1000000"}, p)
}

func TestParams_CloneIsIndependent(t *testing.T) {
	p := Params{"a": "1"}
	c := p.Clone()
	c.Set("a", "2")
	c.Del("a")

	assert.Equal(t, "1", p.Get("a"))
}
