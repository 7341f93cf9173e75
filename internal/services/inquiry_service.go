package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type InquiryService struct {
	db *gorm.DB
}

func NewInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{db: db}
}

// Create stores a contact message from the public form.
func (s *InquiryService) Create(req *dto.CreateInquiryRequest) (*models.Inquiry, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("name is required")
	}
	if !emailPattern.MatchString(NormalizeEmail(req.Email)) {
		return nil, errors.New("a valid email is required")
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		return nil, errors.New("message must be at least 10 characters")
	}

	inquiry := models.Inquiry{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Email:   NormalizeEmail(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.db.Create(&inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return &inquiry, nil
}

// List pages through inquiries; pass resolved=nil for everything.
func (s *InquiryService) List(resolved *bool, page, limit int) ([]models.Inquiry, int64, error) {
	var inquiries []models.Inquiry
	var total int64

	query := s.db.Model(&models.Inquiry{})
	if resolved != nil {
		query = query.Where("resolved = ?", *resolved)
	}
	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&inquiries).Error

	return inquiries, total, err
}

// Resolve marks the inquiry handled with an optional note.
func (s *InquiryService) Resolve(id uuid.UUID, adminNote string) error {
	result := s.db.Model(&models.Inquiry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"resolved":   true,
			"admin_note": adminNote,
		})
	if result.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return result.Error
}

func (s *InquiryService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Inquiry{})
	if result.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return result.Error
}
