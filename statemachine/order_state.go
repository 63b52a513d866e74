package statemachine

import (
	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
)

// roleTargets is the authoritative definition of which statuses each role may
// set. Restaurant admins may jump between their four statuses in any order;
// no forward-only ordering is enforced between them.
var roleTargets = map[models.UserRole][]models.OrderStatus{
	models.RoleCustomer: {models.StatusCanceled},
	models.RoleRestaurantAdmin: {
		models.StatusAccepted,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusOutForDelivery,
	},
	models.RoleDeliveryPersonnel: {models.StatusDelivered},
}

func roleAllows(role models.UserRole, to models.OrderStatus) bool {
	for _, s := range roleTargets[role] {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransition checks whether the acting role may move an order from one
// status to another. Customers get a Forbidden on a non-cancel target (wrong
// role for that lever) and an InvalidTransition when cancelling anything past
// "placed"; every other violation is an InvalidTransition.
func CanTransition(role models.UserRole, from, to models.OrderStatus) error {
	if !models.ValidOrderStatuses[to] {
		return apperrors.InvalidTransition("Unknown order status: " + string(to))
	}

	switch role {
	case models.RoleCustomer:
		if to != models.StatusCanceled {
			return apperrors.Forbidden("Customers can only cancel orders")
		}
		if from != models.StatusPlaced {
			return apperrors.InvalidTransition("Order can only be canceled before confirmation")
		}
		return nil
	case models.RoleRestaurantAdmin:
		if !roleAllows(role, to) {
			return apperrors.InvalidTransition("Invalid status for restaurant admin")
		}
		return nil
	case models.RoleDeliveryPersonnel:
		if to != models.StatusDelivered {
			return apperrors.InvalidTransition("Delivery personnel can only set status to delivered")
		}
		return nil
	default:
		return apperrors.InvalidTransition("Role '" + string(role) + "' may not update orders")
	}
}

// TargetsForRole returns the statuses a role may set, for the public
// state-machine docs endpoint.
func TargetsForRole(role models.UserRole) []models.OrderStatus {
	return roleTargets[role]
}

// AllTargets returns the full role → targets table for documentation.
func AllTargets() map[models.UserRole][]models.OrderStatus {
	return roleTargets
}
