package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is built once in main and passed
// by reference; nothing reads the environment after Load returns.
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session
	JWTSecret     string
	SessionExpiry time.Duration
	CookieName    string
	CookieDomain  string
	CookieSecure  bool

	// OTP
	OTPExpiry        time.Duration
	OTPPurgeInterval time.Duration

	// SMTP (empty host selects the dev mailer)
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Shopify
	ShopifyWebhookSecret string

	// Server
	Port        string
	CORSOrigins string

	// Logging
	LogRetentionDays int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "storehub_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		SessionExpiry: parseDuration(getEnv("SESSION_EXPIRY", "72h"), 72*time.Hour),
		CookieName:    getEnv("SESSION_COOKIE_NAME", "session_token"),
		CookieDomain:  getEnv("SESSION_COOKIE_DOMAIN", ""),
		CookieSecure:  getEnv("SESSION_COOKIE_SECURE", "true") == "true",

		OTPExpiry:        parseDuration(getEnv("OTP_EXPIRY", "10m"), 10*time.Minute),
		OTPPurgeInterval: parseDuration(getEnv("OTP_PURGE_INTERVAL", "1m"), time.Minute),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", "no-reply@storehub.local"),

		ShopifyWebhookSecret: getEnv("SHOPIFY_WEBHOOK_SECRET", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
