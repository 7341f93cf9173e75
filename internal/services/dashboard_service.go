package services

import (
	"time"

	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"gorm.io/gorm"
)

// DashboardService aggregates the counters shown on the admin landing page.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Stats() (*dto.DashboardStats, error) {
	stats := dto.DashboardStats{GeneratedAt: time.Now().UTC()}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Users, s.db.Model(&models.User{})},
		{&stats.UnverifiedUsers, s.db.Model(&models.User{}).Where("verified = false")},
		{&stats.Carts, s.db.Model(&models.Cart{})},
		{&stats.PendingReviews, s.db.Model(&models.Review{}).Where("approved = false")},
		{&stats.OpenInquiries, s.db.Model(&models.Inquiry{}).Where("resolved = false")},
		{&stats.PendingTestimonials, s.db.Model(&models.Testimonial{}).Where("approved = false")},
		{&stats.WebhookEvents24h, s.db.Model(&models.WebhookEvent{}).Where("created_at > ?", time.Now().Add(-24*time.Hour))},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}
