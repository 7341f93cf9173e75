package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/selimcobanoglu/storehub-backend/internal/config"
	"github.com/selimcobanoglu/storehub-backend/internal/handlers"
	"github.com/selimcobanoglu/storehub-backend/internal/middleware"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Cart        *handlers.CartHandler
	Review      *handlers.ReviewHandler
	Testimonial *handlers.TestimonialHandler
	Page        *handlers.PageHandler
	Inquiry     *handlers.InquiryHandler
	Dashboard   *handlers.DashboardHandler
	Webhook     *handlers.WebhookHandler
	Health      *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/verify-otp", h.Auth.VerifyOTP)
	auth.Post("/resend-otp", h.Auth.ResendOTP)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/logout", h.Auth.Logout)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/verify-forgot-password-otp", h.Auth.VerifyForgotPasswordOTP)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	// Public storefront content
	api.Get("/pages/:slug", h.Page.GetPublished)
	api.Get("/products/:product_id/reviews", h.Review.ListByProduct)
	api.Get("/testimonials", h.Testimonial.ListApproved)
	api.Post("/inquiries", h.Inquiry.Create)

	// Webhooks — HMAC-verified, no session
	api.Post("/webhooks/shopify", h.Webhook.HandleShopify)

	// Session-protected routes
	session := middleware.SessionProtected(cfg)
	api.Get("/auth/me", session, h.Auth.Me)
	api.Put("/users/me", session, h.User.UpdateProfile)
	api.Put("/users/me/password", session, h.User.ChangePassword)
	api.Get("/cart", session, h.Cart.Get)
	api.Put("/cart", session, h.Cart.Replace)
	api.Delete("/cart", session, h.Cart.Clear)
	api.Post("/reviews", session, h.Review.Create)
	api.Post("/testimonials", session, h.Testimonial.Create)

	// Admin panel (session + admin role)
	admin := api.Group("/admin", session, middleware.RequireRole(models.RoleAdmin))
	admin.Get("/dashboard/stats", h.Dashboard.Stats)
	admin.Get("/users", h.User.List)
	admin.Get("/inquiries", h.Inquiry.List)
	admin.Put("/inquiries/:id/resolve", h.Inquiry.Resolve)
	admin.Delete("/inquiries/:id", h.Inquiry.Delete)
	admin.Get("/reviews", h.Review.ListAll)
	admin.Put("/reviews/:id/approve", h.Review.Approve)
	admin.Delete("/reviews/:id", h.Review.Delete)
	admin.Get("/testimonials", h.Testimonial.ListAll)
	admin.Put("/testimonials/:id/approve", h.Testimonial.Approve)
	admin.Delete("/testimonials/:id", h.Testimonial.Delete)
	admin.Get("/pages", h.Page.List)
	admin.Get("/pages/:slug", h.Page.Get)
	admin.Post("/pages", h.Page.Create)
	admin.Put("/pages/:slug", h.Page.Update)
	admin.Delete("/pages/:slug", h.Page.Delete)
	admin.Get("/webhooks/events", h.Webhook.ListEvents)

	// Super-admin: user lifecycle
	super := api.Group("/admin", session, middleware.RequireRole(models.RoleSuperAdmin))
	super.Put("/users/:id/role", h.User.ChangeRole)
	super.Delete("/users/:id", h.User.Delete)
}
