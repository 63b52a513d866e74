package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer          UserRole = "customer"
	RoleRestaurantAdmin   UserRole = "restaurant_admin"
	RoleDeliveryPersonnel UserRole = "delivery_personnel"
)

// ValidRoles is the closed set accepted at registration
var ValidRoles = map[UserRole]bool{
	RoleCustomer:          true,
	RoleRestaurantAdmin:   true,
	RoleDeliveryPersonnel: true,
}

type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Name                string     `json:"name" gorm:"not null"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash        string     `json:"-" gorm:"not null"`
	Role                UserRole   `json:"role" gorm:"not null;default:'customer'"`
	Phone               string     `json:"phone"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	LockUntil           *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}
