package models

import "time"

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	OwnerID     uint       `json:"ownerId" gorm:"not null"`
	Owner       User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string     `json:"name" gorm:"not null"`
	CuisineType string     `json:"cuisineType"`
	Address     string     `json:"address"`
	Location    string     `json:"location"` // area tag used for driver matching, e.g. "Downtown"
	Contact     string     `json:"contact"`
	Image       string     `json:"image"` // hosted image URL
	IsAvailable bool       `json:"isAvailable" gorm:"default:true"`
	MenuItems   []MenuItem `json:"menuItems,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurantId" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	Category     string    `json:"category"`
	Image        string    `json:"image"`
	IsAvailable  bool      `json:"isAvailable" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
