package services

import (
	"regexp"
	"testing"
)

func TestGenerateCode_Format(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode error: %v", err)
		}
		if !digits.MatchString(code) {
			t.Fatalf("code %q is not 6 digits", code)
		}
	}
}

func TestHashCode(t *testing.T) {
	t.Parallel()

	if hashCode("123456") != hashCode("123456") {
		t.Fatal("hashCode is not deterministic")
	}
	if hashCode("123456") == hashCode("123457") {
		t.Fatal("distinct codes hashed to the same value")
	}
	if got := len(hashCode("000000")); got != 64 {
		t.Fatalf("hash length: got %d want 64", got)
	}
}
