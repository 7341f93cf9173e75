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

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialService struct {
	db *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{db: db}
}

// Create stores an unapproved testimonial. The author name defaults to the
// account name when the request leaves it blank.
func (s *TestimonialService) Create(userID uuid.UUID, userName string, req *dto.CreateTestimonialRequest) (*models.Testimonial, error) {
	quote := strings.TrimSpace(req.Quote)
	if len(quote) < 10 {
		return nil, errors.New("testimonial must be at least 10 characters")
	}
	if len(quote) > 1000 {
		return nil, errors.New("testimonial must be under 1000 characters")
	}

	author := strings.TrimSpace(req.AuthorName)
	if author == "" {
		author = userName
	}

	testimonial := models.Testimonial{
		ID:         uuid.New(),
		UserID:     userID,
		AuthorName: author,
		Quote:      quote,
	}

	if err := s.db.Create(&testimonial).Error; err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return &testimonial, nil
}

// ListApproved is the public storefront feed.
func (s *TestimonialService) ListApproved(page, limit int) ([]models.Testimonial, int64, error) {
	var testimonials []models.Testimonial
	var total int64

	query := s.db.Model(&models.Testimonial{}).Where("approved = true")
	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&testimonials).Error

	return testimonials, total, err
}

// ListAll is the admin moderation queue.
func (s *TestimonialService) ListAll(approved *bool, page, limit int) ([]models.Testimonial, int64, error) {
	var testimonials []models.Testimonial
	var total int64

	query := s.db.Model(&models.Testimonial{})
	if approved != nil {
		query = query.Where("approved = ?", *approved)
	}
	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&testimonials).Error

	return testimonials, total, err
}

func (s *TestimonialService) Approve(id uuid.UUID) error {
	result := s.db.Model(&models.Testimonial{}).Where("id = ?", id).Update("approved", true)
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return result.Error
}

func (s *TestimonialService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Testimonial{})
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return result.Error
}
