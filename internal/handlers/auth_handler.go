package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/selimcobanoglu/storehub-backend/internal/auth"
	"github.com/selimcobanoglu/storehub-backend/internal/config"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/middleware"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"github.com/selimcobanoglu/storehub-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cookies     *auth.CookieHelper
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cookies *auth.CookieHelper, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		User:    h.authService.ToUserResponse(user),
		Message: "Verification code sent to your email",
	})
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.authService.VerifyOTP(req.Email, req.OTP)
	if err != nil {
		return h.otpError(c, err)
	}

	return h.startSession(c, user, "Email verified")
}

func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	var req dto.ResendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.authService.ResendOTP(req.Email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to resend code",
		})
	}

	return c.JSON(fiber.Map{"message": "Verification code sent"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrUnverified) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Email not verified. Request a new code to verify your account.",
			})
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return h.startSession(c, user, "Logged in")
}

// Logout clears the cookie. The token itself stays valid until expiry;
// there is no server-side revocation.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.ClearSession(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send reset code",
		})
	}

	return c.JSON(fiber.Map{"message": "Reset code sent to your email"})
}

func (h *AuthHandler) VerifyForgotPasswordOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.authService.VerifyForgotPasswordOTP(req.Email, req.OTP); err != nil {
		return h.otpError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Code valid"})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return h.otpError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password reset. You can log in now."})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.SessionUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	return c.JSON(h.authService.ToUserResponse(user))
}

func (h *AuthHandler) startSession(c *fiber.Ctx, user *models.User, message string) error {
	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, []byte(h.cfg.JWTSecret), h.cfg.SessionExpiry)
	if err != nil {
		slog.Error("failed to sign session token", "user_id", user.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	h.cookies.SetSession(c, token)
	return c.JSON(dto.AuthResponse{
		User:    h.authService.ToUserResponse(user),
		Message: message,
	})
}

func (h *AuthHandler) otpError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrOTPNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrOTPExpired), errors.Is(err, services.ErrOTPMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
