package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrOTPNotFound = errors.New("no passcode issued for this email")
	ErrOTPExpired  = errors.New("passcode expired")
	ErrOTPMismatch = errors.New("passcode does not match")
)

// OTPService is the one-time-passcode ledger. The unique index on email
// guarantees at most one live code per identity; issuing supersedes any
// prior code. Expiry is enforced twice: the purge loop deletes stale rows,
// and Verify compares against the stored expiry regardless of the purge.
type OTPService struct {
	db     *gorm.DB
	expiry time.Duration
}

func NewOTPService(db *gorm.DB, expiry time.Duration) *OTPService {
	return &OTPService{db: db, expiry: expiry}
}

// GenerateCode draws 6 digits from a uniform range. Leading zeros are kept.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue creates a fresh code for email, replacing any prior one, and
// returns the plaintext code for delivery. Only the hash is stored.
func (s *OTPService) Issue(email string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	record := models.OneTimePasscode{
		Email:     email,
		CodeHash:  hashCode(code),
		ExpiresAt: time.Now().Add(s.expiry),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).Delete(&models.OneTimePasscode{}).Error; err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return "", fmt.Errorf("failed to store passcode: %w", err)
	}

	return code, nil
}

// Verify checks and consumes the code. Fail order is NotFound, Expired,
// Mismatch; only a full match deletes the row as used.
func (s *OTPService) Verify(email, code string) error {
	return s.check(email, code, true)
}

// Peek checks the code without consuming it, for the two-step
// forgot-password flow where the reset request re-presents the same code.
func (s *OTPService) Peek(email, code string) error {
	return s.check(email, code, false)
}

func (s *OTPService) check(email, code string, consume bool) error {
	var record models.OneTimePasscode
	if err := s.db.Where("email = ?", email).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPNotFound
		}
		return err
	}

	if time.Now().After(record.ExpiresAt) {
		s.db.Delete(&record)
		return ErrOTPExpired
	}

	if subtle.ConstantTimeCompare([]byte(record.CodeHash), []byte(hashCode(code))) != 1 {
		return ErrOTPMismatch
	}

	if consume {
		if err := s.db.Delete(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

// StartPurge deletes expired codes on an interval. Closing done stops it.
func (s *OTPService) StartPurge(interval time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				result := s.db.Where("expires_at < ?", time.Now()).Delete(&models.OneTimePasscode{})
				if result.Error != nil {
					slog.Error("otp purge failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("otp purge completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}

func hashCode(code string) string {
	h := sha256.Sum256([]byte(code))
	return fmt.Sprintf("%x", h)
}
