package payment_gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
)

// SignatureMessage builds the canonical string the processor expects:
// username, amount and reference concatenated without separators.
func SignatureMessage(username string, amount float64, reference string) string {
	return username + FormatAmount(amount) + reference
}

// FormatAmount renders amount in its shortest decimal form, so 1500 is "1500"
// and 1500.5 is "1500.5".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// Sign returns base64(HMAC-SHA256(apiKey, message)).
func Sign(apiKey, message string) string {
	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
