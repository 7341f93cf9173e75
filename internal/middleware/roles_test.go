package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/auth"
	"github.com/selimcobanoglu/storehub-backend/internal/config"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     testSecret,
		CookieName:    "session_token",
		SessionExpiry: time.Hour,
	}
}

func testApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	session := SessionProtected(cfg)

	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app.Get("/me", session, ok)
	app.Get("/admin", session, RequireRole(models.RoleAdmin), ok)
	app.Get("/super", session, RequireRole(models.RoleSuperAdmin), ok)
	return app
}

func sessionCookie(t *testing.T, cfg *config.Config, role string, expiry time.Duration) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(uuid.New(), "user@example.com", role, []byte(cfg.JWTSecret), expiry)
	require.NoError(t, err)
	return &http.Cookie{Name: cfg.CookieName, Value: token}
}

func TestSessionProtected_NoCookie(t *testing.T) {
	cfg := testConfig()
	app := testApp(cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionProtected_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	app := testApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(sessionCookie(t, cfg, models.RoleClient, -time.Minute))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionProtected_GarbageToken(t *testing.T) {
	cfg := testConfig()
	app := testApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "not-a-token"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_Hierarchy(t *testing.T) {
	cfg := testConfig()
	app := testApp(cfg)

	tests := []struct {
		name       string
		role       string
		path       string
		wantStatus int
	}{
		{"client reaches own routes", models.RoleClient, "/me", http.StatusOK},
		{"client blocked from admin", models.RoleClient, "/admin", http.StatusForbidden},
		{"client blocked from super admin", models.RoleClient, "/super", http.StatusForbidden},
		{"admin reaches own routes", models.RoleAdmin, "/me", http.StatusOK},
		{"admin reaches admin", models.RoleAdmin, "/admin", http.StatusOK},
		{"admin blocked from super admin", models.RoleAdmin, "/super", http.StatusForbidden},
		{"super admin reaches everything", models.RoleSuperAdmin, "/super", http.StatusOK},
		{"super admin inherits admin", models.RoleSuperAdmin, "/admin", http.StatusOK},
		{"unknown role is never enough", "owner", "/admin", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.AddCookie(sessionCookie(t, cfg, tt.role, time.Hour))

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
