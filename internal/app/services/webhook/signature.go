package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputeSignature returns the hex HMAC-SHA256 of the raw webhook body. The
// provider signs the exact bytes it sends, so the body must not be re-encoded
// before verification.
func ComputeSignature(rawBody []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}

func verifySignature(rawBody []byte, signature, secret string) bool {
	expected := ComputeSignature(rawBody, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
