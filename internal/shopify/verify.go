// Package shopify verifies webhook deliveries from the commerce platform.
package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader is the header Shopify signs webhook deliveries with.
const SignatureHeader = "X-Shopify-Hmac-Sha256"

// ValidSignature checks the base64 HMAC-SHA256 of the raw request body
// against the shared secret. Fails closed: empty header, empty secret or
// undecodable signature all return false.
func ValidSignature(signatureHeader string, body []byte, secret string) bool {
	if signatureHeader == "" || secret == "" {
		return false
	}

	provided, err := base64.StdEncoding.DecodeString(signatureHeader)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}

// Sign computes the signature Shopify would send for body. Test helper and
// reference for the verification contract.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
