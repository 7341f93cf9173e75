package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrSlugTaken    = errors.New("a page with this slug already exists")
	ErrUnknownKind  = errors.New("unknown page kind")
	ErrInvalidSlug  = errors.New("slug must be lowercase letters, digits and hyphens")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type PageService struct {
	db *gorm.DB
}

func NewPageService(db *gorm.DB) *PageService {
	return &PageService{db: db}
}

// GetPublished serves the storefront; unpublished pages 404.
func (s *PageService) GetPublished(slug string) (*models.Page, error) {
	var page models.Page
	if err := s.db.Where("slug = ? AND published = true", slug).First(&page).Error; err != nil {
		return nil, ErrPageNotFound
	}
	return &page, nil
}

// Get returns any page by slug for the admin editor.
func (s *PageService) Get(slug string) (*models.Page, error) {
	var page models.Page
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, ErrPageNotFound
	}
	return &page, nil
}

// List returns all pages for the admin index.
func (s *PageService) List(page, limit int) ([]models.Page, int64, error) {
	var pages []models.Page
	var total int64

	s.db.Model(&models.Page{}).Count(&total)
	err := s.db.Order("slug ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pages).Error

	return pages, total, err
}

// Create validates the kind tag and stores the block map at the current
// schema version. Slug uniqueness rides on the unique index.
func (s *PageService) Create(req *dto.UpsertPageRequest) (*models.Page, error) {
	if err := validatePageRequest(req); err != nil {
		return nil, err
	}

	page := models.Page{
		ID:            uuid.New(),
		Slug:          req.Slug,
		Title:         strings.TrimSpace(req.Title),
		Kind:          req.Kind,
		SchemaVersion: models.PageSchemaVersion,
		Blocks:        datatypes.JSONMap(req.Blocks),
	}
	if req.Published != nil {
		page.Published = *req.Published
	}

	if err := s.db.Create(&page).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return &page, nil
}

// Update rewrites title, kind, blocks and published state for a slug.
func (s *PageService) Update(slug string, req *dto.UpsertPageRequest) (*models.Page, error) {
	var page models.Page
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, ErrPageNotFound
	}

	if req.Kind != "" && !models.ValidPageKind(req.Kind) {
		return nil, ErrUnknownKind
	}

	updates := map[string]interface{}{
		"schema_version": models.PageSchemaVersion,
	}
	if strings.TrimSpace(req.Title) != "" {
		updates["title"] = strings.TrimSpace(req.Title)
	}
	if req.Kind != "" {
		updates["kind"] = req.Kind
	}
	if req.Blocks != nil {
		updates["blocks"] = datatypes.JSONMap(req.Blocks)
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}

	if err := s.db.Model(&page).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(slug)
}

func (s *PageService) Delete(slug string) error {
	result := s.db.Where("slug = ?", slug).Delete(&models.Page{})
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}
	return result.Error
}

func validatePageRequest(req *dto.UpsertPageRequest) error {
	if !slugPattern.MatchString(req.Slug) {
		return ErrInvalidSlug
	}
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if !models.ValidPageKind(req.Kind) {
		return ErrUnknownKind
	}
	return nil
}
