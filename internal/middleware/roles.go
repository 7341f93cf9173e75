package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
)

// RequireRole enforces the client < admin < super_admin hierarchy. It must
// run after SessionProtected: authentication failures are 401s there, rank
// failures are 403s here.
func RequireRole(minRole string) fiber.Handler {
	minRank := models.RoleRank(minRole)

	return func(c *fiber.Ctx) error {
		role := SessionRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if models.RoleRank(role) < minRank {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Insufficient role",
			})
		}

		return c.Next()
	}
}
