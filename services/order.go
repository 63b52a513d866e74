package services

import (
	"errors"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
	"food-delivery-platform/statemachine"
	"food-delivery-platform/validation"

	"gorm.io/gorm"
)

// OrderService turns carts into immutable order snapshots and advances order
// status under the role-gated transition rules.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrderInput is the checkout payload.
type CreateOrderInput struct {
	DeliveryAddress string
	FromAddress     string
	PhoneNumber     string
}

// Create snapshots the customer's cart into an order and deletes the cart,
// both inside one transaction so either both happen or neither does.
func (s *OrderService) Create(customerID uint, in CreateOrderInput) (*models.Order, error) {
	if in.DeliveryAddress == "" || in.FromAddress == "" || in.PhoneNumber == "" {
		return nil, apperrors.Validation("Delivery address, from address, and phone number are required")
	}
	if err := validation.PhoneNumber(in.PhoneNumber); err != nil {
		return nil, err
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items").Where("customer_id = ?", customerID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("Cart is empty")
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return apperrors.Validation("Cart is empty")
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		var total float64
		for _, ci := range cart.Items {
			items = append(items, models.OrderItem{
				ItemID:   ci.ItemID,
				Name:     ci.ItemName,
				Price:    ci.Price,
				Quantity: ci.Quantity,
			})
			total += ci.Amount
		}

		order = &models.Order{
			CustomerID:      customerID,
			RestaurantID:    cart.RestaurantID,
			Items:           items,
			TotalAmount:     total,
			Status:          models.StatusPlaced,
			DeliveryAddress: in.DeliveryAddress,
			FromAddress:     in.FromAddress,
			PhoneNumber:     in.PhoneNumber,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, cart.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) findOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus advances an order through the role-gated state machine.
// Customers may only touch their own orders.
func (s *OrderService) UpdateStatus(orderID, userID uint, role models.UserRole, status models.OrderStatus) (*models.Order, error) {
	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}
	if role == models.RoleCustomer && order.CustomerID != userID {
		return nil, apperrors.Forbidden("Unauthorized")
	}
	if err := statemachine.CanTransition(role, order.Status, status); err != nil {
		return nil, err
	}
	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Get returns one order; customers can only read their own.
func (s *OrderService) Get(orderID, userID uint, role models.UserRole) (*models.Order, error) {
	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}
	if role == models.RoleCustomer && order.CustomerID != userID {
		return nil, apperrors.Forbidden("Unauthorized")
	}
	return order, nil
}

// All returns every order, newest first (restaurant admin / delivery views).
func (s *OrderService) All() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Order("created_at desc").Find(&orders).Error
	return orders, err
}

// History returns all of a customer's orders regardless of status, newest
// first.
func (s *OrderService) History(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// Active returns the customer's in-flight orders (anything not delivered or
// canceled), newest first.
func (s *OrderService) Active(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("customer_id = ? AND status IN ?", customerID, models.ActiveOrderStatuses).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}
