package services

import (
	"testing"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
)

func registerInput() RegisterInput {
	return RegisterInput{
		MainLocation:     "Colombo",
		VehicleRegNumber: "WP-CAB-1234",
		MobileNumber:     "0771234567",
		Photo:            "https://cdn.example.com/driver.jpg",
	}
}

func TestRegisterDriver(t *testing.T) {
	db := setupDB(t)
	drivers := NewDriverService(db)

	driver, err := drivers.Register(3, registerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !driver.IsAvailable {
		t.Fatal("new driver should start available")
	}
	if driver.UserID != 3 {
		t.Fatalf("user id = %d, want 3", driver.UserID)
	}

	// One profile per user.
	if _, err := drivers.Register(3, registerInput()); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("expected conflict on second registration, got %v", err)
	}
}

func TestRegisterDriverValidation(t *testing.T) {
	db := setupDB(t)
	drivers := NewDriverService(db)

	in := registerInput()
	in.MobileNumber = "12345"
	if _, err := drivers.Register(3, in); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation for short mobile number, got %v", err)
	}

	in = registerInput()
	in.MainLocation = ""
	if _, err := drivers.Register(3, in); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation for empty location, got %v", err)
	}
}

func TestCreateUnavailableDriverPersists(t *testing.T) {
	db := setupDB(t)

	driver := createDriver(t, db, 3, "Colombo", false)

	// A false flag must survive the insert; a column default would swallow it.
	var got models.Driver
	if err := db.First(&got, driver.ID).Error; err != nil {
		t.Fatalf("reload driver: %v", err)
	}
	if got.IsAvailable {
		t.Fatal("driver stored as available despite being created unavailable")
	}
}

func TestUpdateDriverPartial(t *testing.T) {
	db := setupDB(t)
	drivers := NewDriverService(db)

	if _, err := drivers.Register(3, registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := drivers.Update(3, RegisterInput{MainLocation: "Kandy"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	driver, err := drivers.ByUser(3)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if driver.MainLocation != "Kandy" {
		t.Fatalf("location = %q, want Kandy", driver.MainLocation)
	}
	if driver.VehicleRegNumber != "WP-CAB-1234" {
		t.Fatalf("reg number clobbered: %q", driver.VehicleRegNumber)
	}
}

func TestSetAvailability(t *testing.T) {
	db := setupDB(t)
	drivers := NewDriverService(db)

	if _, err := drivers.Register(3, registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	driver, err := drivers.SetAvailability(3, false)
	if err != nil {
		t.Fatalf("set availability: %v", err)
	}
	if driver.IsAvailable {
		t.Fatal("driver still available")
	}

	if _, err := drivers.SetAvailability(99, true); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found for unknown driver, got %v", err)
	}
}

func TestDeleteDriver(t *testing.T) {
	db := setupDB(t)
	drivers := NewDriverService(db)

	if _, err := drivers.Register(3, registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := drivers.Delete(3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := drivers.ByUser(3); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
