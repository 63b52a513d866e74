package services

import (
	"errors"
	"fmt"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
	"food-delivery-platform/validation"

	"gorm.io/gorm"
)

// CartService owns the per-customer cart: one cart per customer, all items
// from a single restaurant, line amounts always recomputed server-side.
type CartService struct {
	db    *gorm.DB
	locks *keyedMutex
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db, locks: newKeyedMutex()}
}

func cartKey(customerID uint) string {
	return fmt.Sprintf("cart:%d", customerID)
}

func (s *CartService) find(customerID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Where("customer_id = ?", customerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Cart not found")
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem creates the customer's cart if needed, enforces the
// single-restaurant rule, and merges duplicate items by quantity.
func (s *CartService) AddItem(customerID uint, in validation.CartItemInput) (*models.Cart, float64, error) {
	if err := validation.CartItem(in); err != nil {
		return nil, 0, err
	}

	unlock := s.locks.Lock(cartKey(customerID))
	defer unlock()

	cart, err := s.find(customerID)
	if err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
		return nil, 0, err
	}

	if cart == nil || apperrors.IsKind(err, apperrors.KindNotFound) {
		cart = &models.Cart{
			CustomerID:   customerID,
			RestaurantID: in.RestaurantID,
			Items: []models.CartItem{{
				ItemID:      in.ItemID,
				ItemName:    in.ItemName,
				Description: in.Description,
				Price:       in.Price,
				Quantity:    in.Quantity,
				Amount:      in.Price * float64(in.Quantity),
			}},
		}
		if err := s.db.Create(cart).Error; err != nil {
			return nil, 0, err
		}
		return cart, cart.Total(), nil
	}

	if cart.RestaurantID != 0 && cart.RestaurantID != in.RestaurantID {
		return nil, 0, apperrors.Conflict(
			"Cart can only contain items from one restaurant. Please clear your cart to add items from a different restaurant.")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if cart.RestaurantID == 0 {
			if err := tx.Model(cart).Update("restaurant_id", in.RestaurantID).Error; err != nil {
				return err
			}
		}
		for i := range cart.Items {
			item := &cart.Items[i]
			if item.ItemID == in.ItemID {
				item.Quantity += in.Quantity
				item.Amount = item.Price * float64(item.Quantity)
				return tx.Model(item).Updates(map[string]interface{}{
					"quantity": item.Quantity,
					"amount":   item.Amount,
				}).Error
			}
		}
		newItem := models.CartItem{
			CartID:      cart.ID,
			ItemID:      in.ItemID,
			ItemName:    in.ItemName,
			Description: in.Description,
			Price:       in.Price,
			Quantity:    in.Quantity,
			Amount:      in.Price * float64(in.Quantity),
		}
		if err := tx.Create(&newItem).Error; err != nil {
			return err
		}
		cart.Items = append(cart.Items, newItem)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return cart, cart.Total(), nil
}

// UpdateItem sets the quantity of an existing line and recomputes its amount.
func (s *CartService) UpdateItem(customerID, itemID uint, quantity int) (*models.Cart, float64, error) {
	if err := validation.Quantity(quantity); err != nil {
		return nil, 0, err
	}

	unlock := s.locks.Lock(cartKey(customerID))
	defer unlock()

	cart, err := s.find(customerID)
	if err != nil {
		return nil, 0, err
	}

	for i := range cart.Items {
		item := &cart.Items[i]
		if item.ItemID == itemID {
			item.Quantity = quantity
			item.Amount = item.Price * float64(quantity)
			if err := s.db.Model(item).Updates(map[string]interface{}{
				"quantity": item.Quantity,
				"amount":   item.Amount,
			}).Error; err != nil {
				return nil, 0, err
			}
			return cart, cart.Total(), nil
		}
	}
	return nil, 0, apperrors.NotFound("Item not found in cart")
}

// RemoveItem deletes one line. Removing the last line deletes the cart row
// itself, so an empty cart never exists. The returned cart is nil in that
// case.
func (s *CartService) RemoveItem(customerID, itemID uint) (*models.Cart, float64, error) {
	unlock := s.locks.Lock(cartKey(customerID))
	defer unlock()

	cart, err := s.find(customerID)
	if err != nil {
		return nil, 0, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, 0, apperrors.NotFound("Item not found in cart")
	}

	if len(cart.Items) == 1 {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Cart{}, cart.ID).Error
		})
		if err != nil {
			return nil, 0, err
		}
		return nil, 0, nil
	}

	if err := s.db.Delete(&models.CartItem{}, cart.Items[idx].ID).Error; err != nil {
		return nil, 0, err
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	return cart, cart.Total(), nil
}

// Get returns the cart and its total; a customer without a cart gets NotFound.
func (s *CartService) Get(customerID uint) (*models.Cart, float64, error) {
	cart, err := s.find(customerID)
	if err != nil {
		return nil, 0, err
	}
	return cart, cart.Total(), nil
}
