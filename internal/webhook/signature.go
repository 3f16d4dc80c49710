// Package webhook signs and verifies webhook payloads with HMAC-SHA256.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body
const SignatureHeader = "X-Webhook-Signature"

const signaturePrefix = "sha256="

// Sign returns the hex encoded HMAC-SHA256 of payload
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether signature is the HMAC-SHA256 of payload under secret.
// The signature may carry a "sha256=" prefix; hex case is ignored.
func Verify(payload []byte, secret, signature string) bool {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return false
	}
	if len(signature) > len(signaturePrefix) && strings.EqualFold(signature[:len(signaturePrefix)], signaturePrefix) {
		signature = signature[len(signaturePrefix):]
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hmac.Equal(got, h.Sum(nil))
}
