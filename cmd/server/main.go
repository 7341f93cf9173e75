package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/selimcobanoglu/storehub-backend/internal/auth"
	"github.com/selimcobanoglu/storehub-backend/internal/config"
	"github.com/selimcobanoglu/storehub-backend/internal/database"
	"github.com/selimcobanoglu/storehub-backend/internal/handlers"
	"github.com/selimcobanoglu/storehub-backend/internal/logging"
	"github.com/selimcobanoglu/storehub-backend/internal/mailer"
	"github.com/selimcobanoglu/storehub-backend/internal/middleware"
	"github.com/selimcobanoglu/storehub-backend/internal/routes"
	"github.com/selimcobanoglu/storehub-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}
	if cfg.ShopifyWebhookSecret == "" {
		slog.Warn("SHOPIFY_WEBHOOK_SECRET not set, all webhook deliveries will be rejected")
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Background maintenance: log retention and OTP expiry purge
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	otpService := services.NewOTPService(db, cfg.OTPExpiry)
	otpService.StartPurge(cfg.OTPPurgeInterval, cleanupDone)

	// Services
	mail := mailer.New(cfg)
	authService := services.NewAuthService(db, otpService, mail)
	cartService := services.NewCartService(db)
	reviewService := services.NewReviewService(db)
	testimonialService := services.NewTestimonialService(db)
	pageService := services.NewPageService(db)
	inquiryService := services.NewInquiryService(db)
	dashboardService := services.NewDashboardService(db)
	webhookService := services.NewWebhookService(db)

	// Handlers
	cookies := auth.NewCookieHelper(cfg)
	h := &routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService, cookies, cfg),
		User:        handlers.NewUserHandler(authService),
		Cart:        handlers.NewCartHandler(cartService),
		Review:      handlers.NewReviewHandler(reviewService),
		Testimonial: handlers.NewTestimonialHandler(testimonialService, authService),
		Page:        handlers.NewPageHandler(pageService),
		Inquiry:     handlers.NewInquiryHandler(inquiryService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Webhook:     handlers.NewWebhookHandler(webhookService, cfg),
		Health:      handlers.NewHealthHandler(db),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
