package vnpay

const (
	ResponseCodeSuccess             = "00"
	ResponseCodeSuspicious          = "07"
	ResponseCodeNotRegistered       = "09"
	ResponseCodeAuthFailed          = "10"
	ResponseCodeExpired             = "11"
	ResponseCodeCardLocked          = "12"
	ResponseCodeIncorrectOTP        = "13"
	ResponseCodeUserCancelled       = "24"
	ResponseCodeInsufficientBalance = "51"
	ResponseCodeLimitExceeded       = "65"
	ResponseCodeBankMaintenance     = "75"
	ResponseCodeWrongPassword       = "79"
	ResponseCodeInvalidSignature    = "97"
	ResponseCodeOther               = "99"
)

// UnknownResponseMessage is returned for codes outside the documented set
const UnknownResponseMessage = "Lỗi không xác định"

var responseMessages = map[string]string{
	ResponseCodeSuccess:             "Giao dịch thành công",
	ResponseCodeSuspicious:          "Trừ tiền thành công. Giao dịch bị nghi ngờ (liên quan tới lừa đảo, giao dịch bất thường).",
	ResponseCodeNotRegistered:       "Giao dịch không thành công do: Thẻ/Tài khoản của khách hàng chưa đăng ký dịch vụ InternetBanking tại ngân hàng.",
	ResponseCodeAuthFailed:          "Giao dịch không thành công do: Khách hàng xác thực thông tin thẻ/tài khoản không đúng quá 3 lần",
	ResponseCodeExpired:             "Giao dịch không thành công do: Đã hết hạn chờ thanh toán. Xin quý khách vui lòng thực hiện lại giao dịch.",
	ResponseCodeCardLocked:          "Giao dịch không thành công do: Thẻ/Tài khoản của khách hàng bị khóa.",
	ResponseCodeIncorrectOTP:        "Giao dịch không thành công do Quý khách nhập sai mật khẩu xác thực giao dịch (OTP). Xin quý khách vui lòng thực hiện lại giao dịch.",
	ResponseCodeUserCancelled:       "Giao dịch không thành công do: Khách hàng hủy giao dịch",
	ResponseCodeInsufficientBalance: "Giao dịch không thành công do: Tài khoản của quý khách không đủ số dư để thực hiện giao dịch.",
	ResponseCodeLimitExceeded:       "Giao dịch không thành công do: Tài khoản của Quý khách đã vượt quá hạn mức giao dịch trong ngày.",
	ResponseCodeBankMaintenance:     "Giao dịch không thành công do: Ngân hàng thanh toán đang bảo trì.",
	ResponseCodeWrongPassword:       "Giao dịch không thành công do: KH nhập sai mật khẩu thanh toán quá số lần quy định. Xin quý khách vui lòng thực hiện lại giao dịch",
	ResponseCodeInvalidSignature:    "Chữ ký không hợp lệ",
	ResponseCodeOther:               "Các lỗi khác (lỗi còn lại, không có trong danh sách mã lỗi đã liệt kê)",
}

// ResponseStatus is the human-readable outcome of a vnp_ResponseCode
type ResponseStatus struct {
	Code    string
	Message string
	Success bool
}

// TranslateResponseCode maps a vnp_ResponseCode to its Vietnamese message.
// Only "00" is a success. Unknown codes get UnknownResponseMessage.
func TranslateResponseCode(code string) ResponseStatus {
	msg, ok := responseMessages[code]
	if !ok {
		msg = UnknownResponseMessage
	}
	return ResponseStatus{
		Code:    code,
		Message: msg,
		Success: code == ResponseCodeSuccess,
	}
}

// GetResponseMessage returns the Vietnamese message for code
func GetResponseMessage(code string) string {
	return TranslateResponseCode(code).Message
}
