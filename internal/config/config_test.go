package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.CookieName != "session_token" {
		t.Errorf("CookieName = %q, want session_token", cfg.CookieName)
	}
	if cfg.SessionExpiry != 72*time.Hour {
		t.Errorf("SessionExpiry = %v, want 72h", cfg.SessionExpiry)
	}
	if cfg.OTPExpiry != 10*time.Minute {
		t.Errorf("OTPExpiry = %v, want 10m", cfg.OTPExpiry)
	}
	if cfg.OTPPurgeInterval != time.Minute {
		t.Errorf("OTPPurgeInterval = %v, want 1m", cfg.OTPPurgeInterval)
	}
	if cfg.LogRetentionDays != 30 {
		t.Errorf("LogRetentionDays = %d, want 30", cfg.LogRetentionDays)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should default to true")
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_EXPIRY", "24h")
	t.Setenv("OTP_EXPIRY", "5m")
	t.Setenv("SESSION_COOKIE_SECURE", "false")
	t.Setenv("LOG_RETENTION_DAYS", "7")

	cfg := Load()

	if cfg.SessionExpiry != 24*time.Hour {
		t.Errorf("SessionExpiry = %v, want 24h", cfg.SessionExpiry)
	}
	if cfg.OTPExpiry != 5*time.Minute {
		t.Errorf("OTPExpiry = %v, want 5m", cfg.OTPExpiry)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure should be false")
	}
	if cfg.LogRetentionDays != 7 {
		t.Errorf("LogRetentionDays = %d, want 7", cfg.LogRetentionDays)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_EXPIRY", "not-a-duration")
	t.Setenv("LOG_RETENTION_DAYS", "-5")

	cfg := Load()

	if cfg.SessionExpiry != 72*time.Hour {
		t.Errorf("SessionExpiry = %v, want 72h fallback", cfg.SessionExpiry)
	}
	if cfg.LogRetentionDays != 30 {
		t.Errorf("LogRetentionDays = %d, want 30 fallback", cfg.LogRetentionDays)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "pw",
		DBName:     "storehub",
		DBSSLMode:  "require",
	}

	want := "host=db.internal user=app password=pw dbname=storehub port=5433 sslmode=require TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
