package services

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/mailer"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnverified         = errors.New("email not verified")
	ErrUserNotFound       = errors.New("user not found")
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// AuthService coordinates registration, OTP verification, login and the
// forgot/reset-password flow. Password hashing happens here, explicitly, on
// the three paths that set a password; nothing rehashes on unrelated saves.
type AuthService struct {
	db     *gorm.DB
	otp    *OTPService
	mailer mailer.Mailer
}

func NewAuthService(db *gorm.DB, otp *OTPService, m mailer.Mailer) *AuthService {
	return &AuthService{db: db, otp: otp, mailer: m}
}

// NormalizeEmail lowercases and trims; uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified user and dispatches an OTP. Delivery
// failure is logged, not rolled back: the user can request a resend.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	email := NormalizeEmail(req.Email)
	if !emailPattern.MatchString(email) {
		return nil, errors.New("a valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("name is required")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
		Name:     strings.TrimSpace(req.Name),
		Role:     models.RoleClient,
		Verified: false,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// Concurrent registration for the same email loses on the unique index.
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.issueAndSend(email)
	return &user, nil
}

// VerifyOTP confirms the code, consumes it and marks the user verified.
func (s *AuthService) VerifyOTP(email, code string) (*models.User, error) {
	email = NormalizeEmail(email)

	if err := s.otp.Verify(email, code); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if !user.Verified {
		if err := s.db.Model(&user).Update("verified", true).Error; err != nil {
			return nil, fmt.Errorf("failed to mark user verified: %w", err)
		}
		user.Verified = true
	}

	return &user, nil
}

// ResendOTP reissues a fresh code, invalidating any prior one.
func (s *AuthService) ResendOTP(email string) error {
	email = NormalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrUserNotFound
	}

	s.issueAndSend(email)
	return nil
}

// Login verifies the password. An unverified account with the correct
// password fails ErrUnverified, not ErrInvalidCredentials.
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", NormalizeEmail(req.Email)).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Verified {
		return nil, ErrUnverified
	}

	return &user, nil
}

// ForgotPassword issues a reset code to an existing account.
func (s *AuthService) ForgotPassword(email string) error {
	email = NormalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrUserNotFound
	}

	s.issueAndSend(email)
	return nil
}

// VerifyForgotPasswordOTP checks the reset code without consuming it, so
// the dashboard can gate the new-password form before the actual reset.
func (s *AuthService) VerifyForgotPasswordOTP(email, code string) error {
	return s.otp.Peek(NormalizeEmail(email), code)
}

// ResetPassword consumes the code and replaces the password hash.
func (s *AuthService) ResetPassword(req *dto.ResetPasswordRequest) error {
	email := NormalizeEmail(req.Email)
	if len(req.NewPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	if err := s.otp.Verify(email, req.OTP); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	result := s.db.Model(&models.User{}).Where("email = ?", email).Update("password", string(hash))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// UpdateProfile changes display fields only; email and role have their own
// paths.
func (s *AuthService) UpdateProfile(id uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(req.Name) != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// ChangePassword requires the current password and rehashes explicitly.
func (s *AuthService) ChangePassword(id uuid.UUID, req *dto.ChangePasswordRequest) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if len(req.NewPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&user).Update("password", string(hash)).Error
}

// ListUsers pages through accounts, optionally filtered by role.
func (s *AuthService) ListUsers(role string, page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.db.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error

	return users, total, err
}

// ChangeRole assigns a new role. Super-admin only at the route layer.
func (s *AuthService) ChangeRole(id uuid.UUID, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, errors.New("invalid role: must be client, admin, or super_admin")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	user.Role = role
	return &user, nil
}

// DeleteUser hard-deletes an account and everything it owns. This is the
// explicit admin action; nothing else removes users.
func (s *AuthService) DeleteUser(id uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", id).First(&cart).Error; err == nil {
			tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&models.CartItem{})
			tx.Unscoped().Delete(&cart)
		}
		tx.Unscoped().Where("user_id = ?", id).Delete(&models.Review{})
		tx.Unscoped().Where("user_id = ?", id).Delete(&models.Testimonial{})
		tx.Where("email = ?", user.Email).Delete(&models.OneTimePasscode{})
		return tx.Unscoped().Delete(&user).Error
	})
}

func (s *AuthService) issueAndSend(email string) {
	code, err := s.otp.Issue(email)
	if err != nil {
		slog.Error("failed to issue otp", "email", email, "error", err)
		return
	}
	if err := s.mailer.SendOTP(email, code); err != nil {
		slog.Error("otp delivery failed", "email", email, "error", err)
	}
}

func (s *AuthService) ToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		Verified: user.Verified,
		Phone:    user.Phone,
		Address:  user.Address,
	}
}
