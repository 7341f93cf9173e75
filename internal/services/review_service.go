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

var (
	ErrReviewExists   = errors.New("you have already reviewed this product")
	ErrReviewNotFound = errors.New("review not found")
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create stores an unapproved review. One review per user and product,
// backed by the composite unique index.
func (s *ReviewService) Create(userID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.ProductID == "" {
		return nil, errors.New("product_id is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	if len(strings.TrimSpace(req.Body)) < 10 {
		return nil, errors.New("review must be at least 10 characters")
	}

	var existing models.Review
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&existing).Error; err == nil {
		return nil, ErrReviewExists
	}

	review := models.Review{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     strings.TrimSpace(req.Title),
		Body:      strings.TrimSpace(req.Body),
	}

	if err := s.db.Create(&review).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// ListByProduct returns approved reviews plus the average rating.
func (s *ReviewService) ListByProduct(productID string, page, limit int) ([]models.Review, int64, float64, error) {
	var reviews []models.Review
	var total int64

	query := s.db.Model(&models.Review{}).Where("product_id = ? AND approved = true", productID)
	query.Count(&total)

	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, 0, err
	}

	var avg struct{ Avg float64 }
	s.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg").
		Where("product_id = ? AND approved = true", productID).
		Scan(&avg)

	return reviews, total, avg.Avg, nil
}

// ListAll is the admin view; pass approved=nil for everything.
func (s *ReviewService) ListAll(approved *bool, page, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := s.db.Model(&models.Review{})
	if approved != nil {
		query = query.Where("approved = ?", *approved)
	}
	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error

	return reviews, total, err
}

// Approve publishes a review.
func (s *ReviewService) Approve(id uuid.UUID) error {
	result := s.db.Model(&models.Review{}).Where("id = ?", id).Update("approved", true)
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return result.Error
}

// Delete soft-deletes a review.
func (s *ReviewService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Review{})
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return result.Error
}
