package models

import "time"

// Driver is a delivery-personnel profile. IsAvailable is the sole gate for
// assignment eligibility; the delivery state machine flips it.
type Driver struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"userId" gorm:"uniqueIndex;not null"`
	MainLocation     string    `json:"mainLocation" gorm:"not null"`
	VehicleRegNumber string    `json:"vehicleRegNumber" gorm:"uniqueIndex;not null"`
	MobileNumber     string    `json:"mobileNumber" gorm:"not null"`
	Photo            string    `json:"photo"` // hosted photo URL, optional
	// No default tag: gorm would drop an explicit false on insert.
	IsAvailable      bool      `json:"isAvailable"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
