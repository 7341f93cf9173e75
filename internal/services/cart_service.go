package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"gorm.io/gorm"
)

const maxCartItems = 100

// CartService persists one cart per user. The unique index on user_id is
// the synchronization point for concurrent writes.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{ID: uuid.New(), UserID: userID}
		if err := s.db.Create(&cart).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Replace swaps the cart contents for the given items in one transaction.
func (s *CartService) Replace(userID uuid.UUID, items []dto.CartItemInput) (*models.Cart, error) {
	if len(items) > maxCartItems {
		return nil, fmt.Errorf("cart cannot hold more than %d items", maxCartItems)
	}
	for _, item := range items {
		if item.ProductID == "" || item.Title == "" {
			return nil, errors.New("every item needs a product_id and title")
		}
		if item.Quantity < 1 || item.Quantity > 99 {
			return nil, errors.New("item quantity must be between 1 and 99")
		}
		if item.UnitPriceCents < 0 {
			return nil, errors.New("item price cannot be negative")
		}
	}

	cart, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			row := models.CartItem{
				ID:             uuid.New(),
				CartID:         cart.ID,
				ProductID:      item.ProductID,
				VariantID:      item.VariantID,
				Title:          item.Title,
				Quantity:       item.Quantity,
				UnitPriceCents: item.UnitPriceCents,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace cart: %w", err)
	}

	return s.Get(userID)
}

// Clear removes every item but keeps the cart row.
func (s *CartService) Clear(userID uuid.UUID) error {
	cart, err := s.Get(userID)
	if err != nil {
		return err
	}
	return s.db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}
