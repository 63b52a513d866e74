// Package validation holds the pure input rules the services enforce before
// touching storage, independent of any schema-level validation.
package validation

import (
	"regexp"
	"strings"

	"food-delivery-platform/apperrors"
)

// phoneRegexp requires exactly 10 digits, matching the order checkout rule.
var phoneRegexp = regexp.MustCompile(`^\d{10}$`)

// PhoneNumber checks the checkout phone number format.
func PhoneNumber(phone string) error {
	if !phoneRegexp.MatchString(phone) {
		return apperrors.Validation("Invalid phone number. It must contain exactly 10 digits.")
	}
	return nil
}

// CartItemInput are the fields a customer supplies when adding to cart. The
// amount is never part of the input; it is always recomputed server-side.
type CartItemInput struct {
	RestaurantID uint
	ItemID       uint
	ItemName     string
	Description  string
	Price        float64
	Quantity     int
}

func CartItem(in CartItemInput) error {
	if in.RestaurantID == 0 || in.ItemID == 0 || strings.TrimSpace(in.ItemName) == "" {
		return apperrors.Validation("Missing required fields (restaurantId, itemId, itemName, price, quantity)")
	}
	if in.Price <= 0 {
		return apperrors.Validation("Price must be a positive number")
	}
	if in.Quantity < 1 {
		return apperrors.Validation("Quantity must be a positive integer")
	}
	return nil
}

// Quantity checks a cart quantity update.
func Quantity(q int) error {
	if q < 1 {
		return apperrors.Validation("Invalid quantity")
	}
	return nil
}

// DriverInput are the fields required to register a driver.
type DriverInput struct {
	MainLocation     string
	VehicleRegNumber string
	MobileNumber     string
}

func Driver(in DriverInput) error {
	if strings.TrimSpace(in.MainLocation) == "" ||
		strings.TrimSpace(in.VehicleRegNumber) == "" ||
		strings.TrimSpace(in.MobileNumber) == "" {
		return apperrors.Validation("mainLocation, vehicleRegNumber and mobileNumber are required")
	}
	return PhoneNumber(in.MobileNumber)
}
