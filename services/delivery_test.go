package services

import (
	"testing"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
)

func assignInput(orderID uint) AssignInput {
	return AssignInput{
		OrderID:            orderID,
		CustomerID:         1,
		RestaurantLocation: "Colombo",
		DeliveryLocation:   "12 Lake Road",
	}
}

func TestAssignTakesDriverOffPool(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	driver := createDriver(t, db, 3, "Colombo", true)

	delivery, err := deliveries.Assign(assignInput(1))
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if delivery.DriverID == nil || *delivery.DriverID != driver.ID {
		t.Fatalf("driver id = %v, want %d", delivery.DriverID, driver.ID)
	}
	if delivery.Status != models.DeliveryAssigned {
		t.Fatalf("status = %q, want Assigned", delivery.Status)
	}
	if delivery.AcceptStatus != models.AcceptPending {
		t.Fatalf("accept status = %q, want Pending", delivery.AcceptStatus)
	}

	var got models.Driver
	if err := db.First(&got, driver.ID).Error; err != nil {
		t.Fatalf("reload driver: %v", err)
	}
	if got.IsAvailable {
		t.Fatal("driver still available after assignment")
	}
}

func TestAssignNoDriverInArea(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	createDriver(t, db, 3, "Kandy", true)
	createDriver(t, db, 4, "Colombo", false)

	_, err := deliveries.Assign(assignInput(1))
	if !apperrors.IsKind(err, apperrors.KindNoDriver) {
		t.Fatalf("expected no-driver, got %v", err)
	}
}

func TestAssignValidatesInput(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)

	in := assignInput(1)
	in.RestaurantLocation = ""
	if _, err := deliveries.Assign(in); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAssignReusesDeliveryRow(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	createDriver(t, db, 3, "Colombo", true)
	createDriver(t, db, 4, "Colombo", true)

	first, err := deliveries.Assign(assignInput(1))
	if err != nil {
		t.Fatalf("first assign: %v", err)
	}
	second, err := deliveries.Assign(assignInput(1))
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("delivery rows %d and %d, want one row per order", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.Delivery{}).Where("order_id = ?", 1).Count(&count)
	if count != 1 {
		t.Fatalf("delivery rows = %d, want 1", count)
	}
}

func TestDriverAccepts(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	driver := createDriver(t, db, 3, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign: %v", err)
	}
	delivery, err := deliveries.Respond(1, 3, "accept")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if delivery.AcceptStatus != models.AcceptAccepted {
		t.Fatalf("accept status = %q, want Accepted", delivery.AcceptStatus)
	}

	// Accepting keeps the driver committed.
	var got models.Driver
	db.First(&got, driver.ID)
	if got.IsAvailable {
		t.Fatal("driver freed by accept")
	}

	// The response is final.
	if _, err := deliveries.Respond(1, 3, "decline"); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("expected conflict on second response, got %v", err)
	}
}

func TestDeclineFreesDriverAndReassigns(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	first := createDriver(t, db, 3, "Colombo", true)
	second := createDriver(t, db, 4, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign: %v", err)
	}
	delivery, err := deliveries.Respond(1, 3, "decline")
	if err != nil {
		t.Fatalf("decline: %v", err)
	}

	// The replacement is bound with a fresh pending response.
	if delivery.DriverID == nil || *delivery.DriverID != second.ID {
		t.Fatalf("driver id = %v, want replacement %d", delivery.DriverID, second.ID)
	}
	if delivery.AcceptStatus != models.AcceptPending {
		t.Fatalf("accept status = %q, want Pending", delivery.AcceptStatus)
	}
	if delivery.Status != models.DeliveryAssigned {
		t.Fatalf("status = %q, want Assigned", delivery.Status)
	}

	var d1, d2 models.Driver
	db.First(&d1, first.ID)
	db.First(&d2, second.ID)
	if !d1.IsAvailable {
		t.Fatal("declining driver not freed")
	}
	if d2.IsAvailable {
		t.Fatal("replacement driver still available")
	}
}

func TestDeclineWithoutReplacement(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	driver := createDriver(t, db, 3, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign: %v", err)
	}

	// The only driver declines; the replacement lookup must not hand the
	// delivery straight back to them.
	delivery, err := deliveries.Respond(1, 3, "decline")
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	if delivery.DriverID != nil {
		t.Fatalf("driver id = %v, want unassigned", delivery.DriverID)
	}
	if delivery.AcceptStatus != models.AcceptDeclined {
		t.Fatalf("accept status = %q, want Declined", delivery.AcceptStatus)
	}
	if delivery.Status != models.DeliveryPending {
		t.Fatalf("status = %q, want Pending", delivery.Status)
	}

	var got models.Driver
	db.First(&got, driver.ID)
	if !got.IsAvailable {
		t.Fatal("declining driver not freed")
	}
}

func TestRespondOwnership(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	createDriver(t, db, 3, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := deliveries.Respond(1, 99, "accept"); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden for other user, got %v", err)
	}
	if _, err := deliveries.Respond(1, 3, "maybe"); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation for bad action, got %v", err)
	}
	if _, err := deliveries.Respond(42, 3, "accept"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found for unknown order, got %v", err)
	}
}

func TestStatusRequiresAcceptance(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	createDriver(t, db, 3, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign: %v", err)
	}
	_, err := deliveries.UpdateStatus(1, 3, models.DeliveryPickedUp)
	if !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Fatalf("expected invalid transition before accept, got %v", err)
	}
}

func TestDeliveredFreesDriverAndFreezes(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	driver := createDriver(t, db, 3, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := deliveries.Respond(1, 3, "accept"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := deliveries.UpdateStatus(1, 3, models.DeliveryPickedUp); err != nil {
		t.Fatalf("pick up: %v", err)
	}
	delivery, err := deliveries.UpdateStatus(1, 3, models.DeliveryDelivered)
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if delivery.Status != models.DeliveryDelivered {
		t.Fatalf("status = %q, want Delivered", delivery.Status)
	}

	var got models.Driver
	db.First(&got, driver.ID)
	if !got.IsAvailable {
		t.Fatal("driver not freed on terminal status")
	}

	// Terminal records are immutable.
	if _, err := deliveries.UpdateStatus(1, 3, models.DeliveryPickedUp); !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Fatalf("expected invalid transition after terminal, got %v", err)
	}
}

func TestCancelledIsTerminal(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	createDriver(t, db, 3, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := deliveries.Respond(1, 3, "accept"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := deliveries.UpdateStatus(1, 3, models.DeliveryCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := deliveries.UpdateStatus(1, 3, models.DeliveryDelivered); !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Fatalf("expected invalid transition after cancel, got %v", err)
	}
}

func TestUpdateStatusRejectsBadTarget(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	createDriver(t, db, 3, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := deliveries.Respond(1, 3, "accept"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := deliveries.UpdateStatus(1, 3, models.DeliveryAssigned); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation for non-driver target, got %v", err)
	}
}

func TestAssignedToListsPendingOnly(t *testing.T) {
	db := setupDB(t)
	deliveries := NewDeliveryService(db)
	createDriver(t, db, 3, "Colombo", true)
	createDriver(t, db, 4, "Colombo", true)

	if _, err := deliveries.Assign(assignInput(1)); err != nil {
		t.Fatalf("assign 1: %v", err)
	}
	if _, err := deliveries.Assign(assignInput(2)); err != nil {
		t.Fatalf("assign 2: %v", err)
	}

	pending, err := deliveries.AssignedTo(3)
	if err != nil {
		t.Fatalf("assigned to: %v", err)
	}
	if len(pending) != 1 || pending[0].OrderID != 1 {
		t.Fatalf("pending = %+v, want order 1 only", pending)
	}

	if _, err := deliveries.Respond(1, 3, "accept"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	pending, err = deliveries.AssignedTo(3)
	if err != nil {
		t.Fatalf("assigned to after accept: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending = %d, want 0 after accept", len(pending))
	}

	if _, err := deliveries.AssignedTo(99); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found for unregistered driver, got %v", err)
	}
}
