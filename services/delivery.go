package services

import (
	"errors"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
	"food-delivery-platform/statemachine"

	"gorm.io/gorm"
)

// DeliveryService runs the driver assignment state machine. It picks an
// available driver at the restaurant's location, tracks the accept/decline
// response, and follows the delivery through to a terminal state. Driver
// availability is flipped here, never elsewhere.
type DeliveryService struct {
	db    *gorm.DB
	locks *keyedMutex
}

func NewDeliveryService(db *gorm.DB) *DeliveryService {
	return &DeliveryService{db: db, locks: newKeyedMutex()}
}

func locationKey(location string) string {
	return "location:" + location
}

// AssignInput identifies the order and where the handoff happens.
type AssignInput struct {
	OrderID            uint
	CustomerID         uint
	RestaurantLocation string
	DeliveryLocation   string
}

func (s *DeliveryService) findDelivery(orderID uint) (*models.Delivery, error) {
	var delivery models.Delivery
	err := s.db.Where("order_id = ?", orderID).First(&delivery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Delivery not found")
	}
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

// availableDriverAt returns the first available driver at the location, or
// nil when there is none. First match wins; no distance ranking. excludeID
// keeps a driver who just declined out of the replacement pick.
func (s *DeliveryService) availableDriverAt(tx *gorm.DB, location string, excludeID uint) (*models.Driver, error) {
	var driver models.Driver
	q := tx.Where("is_available = ? AND main_location = ?", true, location)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Order("id").First(&driver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// assignTo points the delivery at the driver and takes the driver off the
// available pool, atomically.
func (s *DeliveryService) assignTo(delivery *models.Delivery, driver *models.Driver) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		delivery.DriverID = &driver.ID
		delivery.Status = models.DeliveryAssigned
		delivery.AcceptStatus = models.AcceptPending
		if err := tx.Save(delivery).Error; err != nil {
			return err
		}
		driver.IsAvailable = false
		return tx.Model(driver).Update("is_available", false).Error
	})
}

// Assign finds an available driver at the restaurant's location and binds the
// order's delivery record to them. Calling it again for the same order reuses
// the existing row. One delivery per order, ever.
func (s *DeliveryService) Assign(in AssignInput) (*models.Delivery, error) {
	if in.OrderID == 0 || in.CustomerID == 0 || in.RestaurantLocation == "" || in.DeliveryLocation == "" {
		return nil, apperrors.Validation("orderId, customerId, restaurantLocation, and deliveryLocation are required")
	}

	unlock := s.locks.Lock(locationKey(in.RestaurantLocation))
	defer unlock()

	driver, err := s.availableDriverAt(s.db, in.RestaurantLocation, 0)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperrors.NoDriver("No available drivers in this area")
	}

	delivery, err := s.findDelivery(in.OrderID)
	if apperrors.IsKind(err, apperrors.KindNotFound) {
		delivery = &models.Delivery{
			OrderID:            in.OrderID,
			CustomerID:         in.CustomerID,
			RestaurantLocation: in.RestaurantLocation,
			DeliveryLocation:   in.DeliveryLocation,
			AcceptStatus:       models.AcceptPending,
			Status:             models.DeliveryPending,
		}
	} else if err != nil {
		return nil, err
	}

	if err := s.assignTo(delivery, driver); err != nil {
		return nil, err
	}
	return delivery, nil
}

// Respond handles the assigned driver's accept or decline. A decline frees
// the driver and immediately tries one replacement lookup at the same
// location; if nobody is available the delivery stays Pending and unassigned.
func (s *DeliveryService) Respond(orderID, driverUserID uint, action string) (*models.Delivery, error) {
	if action != "accept" && action != "decline" {
		return nil, apperrors.Validation(`Action must be "accept" or "decline"`)
	}

	delivery, err := s.findDelivery(orderID)
	if err != nil {
		return nil, err
	}

	driver, err := s.assignedDriver(delivery, driverUserID)
	if err != nil {
		return nil, err
	}

	if err := statemachine.CanRespond(delivery.AcceptStatus); err != nil {
		return nil, err
	}

	if action == "accept" {
		// Driver stays unavailable; the flag was already flipped at
		// assignment time.
		delivery.AcceptStatus = models.AcceptAccepted
		if err := s.db.Model(delivery).Update("accept_status", models.AcceptAccepted).Error; err != nil {
			return nil, err
		}
		return delivery, nil
	}

	unlock := s.locks.Lock(locationKey(delivery.RestaurantLocation))
	defer unlock()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		delivery.DriverID = nil
		delivery.AcceptStatus = models.AcceptDeclined
		delivery.Status = models.DeliveryPending
		if err := tx.Save(delivery).Error; err != nil {
			return err
		}
		return tx.Model(driver).Update("is_available", true).Error
	})
	if err != nil {
		return nil, err
	}

	// One replacement attempt per decline, never recursive.
	replacement, err := s.availableDriverAt(s.db, delivery.RestaurantLocation, driver.ID)
	if err != nil {
		return nil, err
	}
	if replacement != nil {
		if err := s.assignTo(delivery, replacement); err != nil {
			return nil, err
		}
	}
	return delivery, nil
}

// UpdateStatus moves an accepted delivery through Picked Up / Delivered /
// Cancelled. Terminal statuses free the driver and freeze the record.
func (s *DeliveryService) UpdateStatus(orderID, driverUserID uint, status models.DeliveryStatus) (*models.Delivery, error) {
	delivery, err := s.findDelivery(orderID)
	if err != nil {
		return nil, err
	}

	driver, err := s.assignedDriver(delivery, driverUserID)
	if err != nil {
		return nil, err
	}

	if err := statemachine.CanProgress(delivery, status); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		delivery.Status = status
		if err := tx.Model(delivery).Update("status", status).Error; err != nil {
			return err
		}
		if statemachine.IsTerminal(status) {
			return tx.Model(driver).Update("is_available", true).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// AssignedTo lists the deliveries still waiting on this driver's response.
func (s *DeliveryService) AssignedTo(driverUserID uint) ([]models.Delivery, error) {
	var driver models.Driver
	err := s.db.Where("user_id = ?", driverUserID).First(&driver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Driver not found")
	}
	if err != nil {
		return nil, err
	}

	var deliveries []models.Delivery
	err = s.db.Where("driver_id = ? AND accept_status = ?", driver.ID, models.AcceptPending).
		Find(&deliveries).Error
	return deliveries, err
}

// assignedDriver resolves the delivery's current driver and checks the acting
// user owns that driver record.
func (s *DeliveryService) assignedDriver(delivery *models.Delivery, driverUserID uint) (*models.Driver, error) {
	if delivery.DriverID == nil {
		return nil, apperrors.Forbidden("Not authorized to act on this assignment")
	}
	var driver models.Driver
	err := s.db.First(&driver, *delivery.DriverID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Forbidden("Not authorized to act on this assignment")
	}
	if err != nil {
		return nil, err
	}
	if driver.UserID != driverUserID {
		return nil, apperrors.Forbidden("Not authorized to act on this assignment")
	}
	return &driver, nil
}
