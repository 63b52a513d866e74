package models

import "time"

// Cart holds a customer's prospective order. One cart per customer, and all
// items must come from the same restaurant.
type Cart struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	CustomerID   uint       `json:"customerId" gorm:"uniqueIndex;not null"`
	RestaurantID uint       `json:"restaurantId" gorm:"not null"`
	Items        []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	CartID      uint    `json:"cartId" gorm:"not null;index"`
	ItemID      uint    `json:"itemId" gorm:"not null"`
	ItemName    string  `json:"itemName" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	Amount      float64 `json:"amount" gorm:"not null"` // always price * quantity, recomputed on write
}

// Total sums the line amounts.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Amount
	}
	return total
}
