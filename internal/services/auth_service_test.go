package services

import "testing"

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
		{"already@example.com", "already@example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmailPattern(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last+tag@sub.example.co",
		"digits123@example.io",
	}
	for _, email := range valid {
		if !emailPattern.MatchString(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"no-at-sign",
		"@example.com",
		"user@",
		"user@host",
		"user @example.com",
	}
	for _, email := range invalid {
		if emailPattern.MatchString(email) {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}
