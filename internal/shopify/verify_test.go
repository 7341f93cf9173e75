package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "shpss_test_secret"

func TestValidSignature(t *testing.T) {
	body := []byte(`{"id":820982911946154508,"topic":"orders/create"}`)
	sig := Sign(body, testSecret)

	assert.True(t, ValidSignature(sig, body, testSecret))
}

func TestValidSignature_AlteredBody(t *testing.T) {
	body := []byte(`{"id":820982911946154508,"topic":"orders/create"}`)
	sig := Sign(body, testSecret)

	// Flipping a single byte must invalidate the signature.
	tampered := make([]byte, len(body))
	copy(tampered, body)
	tampered[10] ^= 0x01

	assert.False(t, ValidSignature(sig, tampered, testSecret))
}

func TestValidSignature_FailsClosed(t *testing.T) {
	body := []byte(`{"ok":true}`)
	sig := Sign(body, testSecret)

	tests := []struct {
		name   string
		header string
		secret string
	}{
		{"missing header", "", testSecret},
		{"missing secret", sig, ""},
		{"wrong secret", sig, "other-secret"},
		{"not base64", "%%%not-base64%%%", testSecret},
		{"truncated signature", sig[:8], testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, ValidSignature(tt.header, body, tt.secret))
		})
	}
}
