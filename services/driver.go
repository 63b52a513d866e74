package services

import (
	"errors"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
	"food-delivery-platform/validation"

	"gorm.io/gorm"
)

// DriverService is the driver registry: one profile per user, self-service
// CRUD, and the availability flag the assignment state machine flips.
type DriverService struct {
	db *gorm.DB
}

func NewDriverService(db *gorm.DB) *DriverService {
	return &DriverService{db: db}
}

// RegisterInput carries the driver profile fields. Photo is an already-hosted
// URL; upload itself happens elsewhere.
type RegisterInput struct {
	MainLocation     string
	VehicleRegNumber string
	MobileNumber     string
	Photo            string
}

func (s *DriverService) Register(userID uint, in RegisterInput) (*models.Driver, error) {
	if err := validation.Driver(validation.DriverInput{
		MainLocation:     in.MainLocation,
		VehicleRegNumber: in.VehicleRegNumber,
		MobileNumber:     in.MobileNumber,
	}); err != nil {
		return nil, err
	}

	var existing models.Driver
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("Driver already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	driver := &models.Driver{
		UserID:           userID,
		MainLocation:     in.MainLocation,
		VehicleRegNumber: in.VehicleRegNumber,
		MobileNumber:     in.MobileNumber,
		Photo:            in.Photo,
		IsAvailable:      true,
	}
	if err := s.db.Create(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) ByUser(userID uint) (*models.Driver, error) {
	var driver models.Driver
	err := s.db.Where("user_id = ?", userID).First(&driver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Driver not found")
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// Update applies the non-empty fields only.
func (s *DriverService) Update(userID uint, in RegisterInput) (*models.Driver, error) {
	driver, err := s.ByUser(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.MainLocation != "" {
		updates["main_location"] = in.MainLocation
	}
	if in.VehicleRegNumber != "" {
		updates["vehicle_reg_number"] = in.VehicleRegNumber
	}
	if in.MobileNumber != "" {
		updates["mobile_number"] = in.MobileNumber
	}
	if in.Photo != "" {
		updates["photo"] = in.Photo
	}
	if len(updates) > 0 {
		if err := s.db.Model(driver).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return driver, nil
}

func (s *DriverService) Delete(userID uint) error {
	driver, err := s.ByUser(userID)
	if err != nil {
		return err
	}
	return s.db.Delete(driver).Error
}

// SetAvailability is the external lever the assignment machine also pulls.
func (s *DriverService) SetAvailability(userID uint, available bool) (*models.Driver, error) {
	driver, err := s.ByUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(driver).Update("is_available", available).Error; err != nil {
		return nil, err
	}
	driver.IsAvailable = available
	return driver, nil
}
