package models

import "time"

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusAccepted       OrderStatus = "accepted"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCanceled       OrderStatus = "canceled"
)

// ValidOrderStatuses is the closed status enum
var ValidOrderStatuses = map[OrderStatus]bool{
	StatusPlaced:         true,
	StatusAccepted:       true,
	StatusPreparing:      true,
	StatusReady:          true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCanceled:       true,
}

// ActiveOrderStatuses are the non-terminal states shown on a customer's
// active-orders view.
var ActiveOrderStatuses = []OrderStatus{
	StatusPlaced, StatusAccepted, StatusPreparing, StatusReady, StatusOutForDelivery,
}

// Order is an immutable snapshot of a cart at checkout time. Only Status
// mutates after creation.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	CustomerID      uint        `json:"customerId" gorm:"not null;index"`
	RestaurantID    uint        `json:"restaurantId" gorm:"not null"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64     `json:"totalAmount" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'placed'"`
	DeliveryAddress string      `json:"deliveryAddress" gorm:"not null"`
	FromAddress     string      `json:"fromAddress" gorm:"not null"`
	PhoneNumber     string      `json:"phoneNumber" gorm:"not null"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"orderId" gorm:"not null;index"`
	ItemID   uint    `json:"itemId" gorm:"not null"`
	Name     string  `json:"name" gorm:"not null"` // snapshot name at time of order
	Price    float64 `json:"price" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
}
