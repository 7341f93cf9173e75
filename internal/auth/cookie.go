package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selimcobanoglu/storehub-backend/internal/config"
)

// CookieHelper writes the session credential cookie. The cookie is always
// HTTP-only; SameSite=None lets the admin dashboard call the API cross-site.
type CookieHelper struct {
	cfg *config.Config
}

func NewCookieHelper(cfg *config.Config) *CookieHelper {
	return &CookieHelper{cfg: cfg}
}

// SetSession attaches the signed token for the configured session window.
func (h *CookieHelper) SetSession(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionExpiry),
		Domain:   h.cfg.CookieDomain,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

// ClearSession expires the cookie immediately. Logout is advisory only:
// an already-issued token stays valid until its exp claim.
func (h *CookieHelper) ClearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Domain:   h.cfg.CookieDomain,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
