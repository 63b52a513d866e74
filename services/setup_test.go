package services

import (
	"testing"

	"food-delivery-platform/config"
	"food-delivery-platform/models"
	"food-delivery-platform/validation"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory database per test. A single connection
// keeps every query on the same memory store.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func itemInput(restaurantID, itemID uint, name string, price float64, quantity int) validation.CartItemInput {
	return validation.CartItemInput{
		RestaurantID: restaurantID,
		ItemID:       itemID,
		ItemName:     name,
		Price:        price,
		Quantity:     quantity,
	}
}

func createDriver(t *testing.T, db *gorm.DB, userID uint, location string, available bool) *models.Driver {
	t.Helper()
	driver := &models.Driver{
		UserID:           userID,
		MainLocation:     location,
		VehicleRegNumber: "REG-" + string(rune('A'+userID)),
		MobileNumber:     "0770000000",
		IsAvailable:      available,
	}
	if err := db.Create(driver).Error; err != nil {
		t.Fatalf("create driver: %v", err)
	}
	return driver
}
