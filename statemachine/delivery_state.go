package statemachine

import (
	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
)

// driverStatusTargets are the delivery statuses a driver may set directly.
// Pending and Assigned are reserved for the assignment flow itself.
var driverStatusTargets = map[models.DeliveryStatus]bool{
	models.DeliveryPickedUp:  true,
	models.DeliveryDelivered: true,
	models.DeliveryCancelled: true,
}

// terminalDeliveryStatuses admit no further changes once reached.
var terminalDeliveryStatuses = map[models.DeliveryStatus]bool{
	models.DeliveryDelivered: true,
	models.DeliveryCancelled: true,
}

// IsTerminal reports whether a delivery status is final.
func IsTerminal(status models.DeliveryStatus) bool {
	return terminalDeliveryStatuses[status]
}

// CanRespond checks whether the assignment still awaits a driver response.
func CanRespond(accept models.AcceptStatus) error {
	if accept != models.AcceptPending {
		return apperrors.Conflict("Assignment response already processed")
	}
	return nil
}

// CanProgress checks whether a delivery may move to the requested status: the
// target must be a driver-settable status, the assignment must have been
// accepted first, and terminal deliveries never change.
func CanProgress(d *models.Delivery, to models.DeliveryStatus) error {
	if !driverStatusTargets[to] {
		return apperrors.Validation("Status must be one of: Picked Up, Delivered, Cancelled")
	}
	if d.AcceptStatus != models.AcceptAccepted {
		return apperrors.InvalidTransition("Delivery must be accepted before updating status")
	}
	if IsTerminal(d.Status) {
		return apperrors.InvalidTransition("Delivery status cannot be updated after being Delivered or Cancelled")
	}
	return nil
}
