package models

import "time"

// AcceptStatus tracks whether the assigned driver has responded
type AcceptStatus string

const (
	AcceptPending  AcceptStatus = "Pending"
	AcceptAccepted AcceptStatus = "Accepted"
	AcceptDeclined AcceptStatus = "Declined"
)

// DeliveryStatus tracks the physical delivery progress
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "Pending"
	DeliveryAssigned  DeliveryStatus = "Assigned"
	DeliveryPickedUp  DeliveryStatus = "Picked Up"
	DeliveryDelivered DeliveryStatus = "Delivered"
	DeliveryCancelled DeliveryStatus = "Cancelled"
)

// Delivery links an order to a driver. One row per order, reused across
// re-assignments; never deleted so history is retained.
type Delivery struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	OrderID            uint           `json:"orderId" gorm:"uniqueIndex;not null"`
	DriverID           *uint          `json:"driverId"` // nil while unassigned or after a decline
	CustomerID         uint           `json:"customerId" gorm:"not null"`
	RestaurantLocation string         `json:"restaurantLocation" gorm:"not null"`
	DeliveryLocation   string         `json:"deliveryLocation" gorm:"not null"`
	AcceptStatus       AcceptStatus   `json:"acceptStatus" gorm:"not null;default:'Pending'"`
	Status             DeliveryStatus `json:"status" gorm:"not null;default:'Pending'"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
