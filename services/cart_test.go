package services

import (
	"testing"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"
)

func TestAddItemCreatesCart(t *testing.T) {
	db := setupDB(t)
	carts := NewCartService(db)

	cart, total, err := carts.AddItem(1, itemInput(10, 100, "Kottu", 12.5, 2))
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if cart.RestaurantID != 10 {
		t.Fatalf("restaurant id = %d, want 10", cart.RestaurantID)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(cart.Items))
	}
	if total != 25 {
		t.Fatalf("total = %v, want 25", total)
	}
	if cart.Items[0].Amount != 25 {
		t.Fatalf("amount = %v, want 25", cart.Items[0].Amount)
	}
}

func TestAddItemMergesQuantity(t *testing.T) {
	db := setupDB(t)
	carts := NewCartService(db)

	if _, _, err := carts.AddItem(1, itemInput(10, 100, "Kottu", 10, 2)); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, total, err := carts.AddItem(1, itemInput(10, 100, "Kottu", 10, 3))
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1 (merged)", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", cart.Items[0].Quantity)
	}
	if total != 50 {
		t.Fatalf("total = %v, want 50", total)
	}
}

func TestAddItemSingleRestaurantInvariant(t *testing.T) {
	db := setupDB(t)
	carts := NewCartService(db)

	if _, _, err := carts.AddItem(1, itemInput(10, 100, "Kottu", 10, 1)); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, _, err := carts.AddItem(1, itemInput(20, 200, "Pizza", 15, 1))
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// Cart unchanged after the rejected add.
	cart, total, err := carts.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cart.RestaurantID != 10 || len(cart.Items) != 1 || total != 10 {
		t.Fatalf("cart mutated after rejected add: restaurant=%d items=%d total=%v",
			cart.RestaurantID, len(cart.Items), total)
	}
}

func TestAddItemValidation(t *testing.T) {
	db := setupDB(t)
	carts := NewCartService(db)

	cases := []struct {
		name string
		in   func() (uint, uint, string, float64, int)
	}{
		{"zero price", func() (uint, uint, string, float64, int) { return 10, 100, "Kottu", 0, 1 }},
		{"zero quantity", func() (uint, uint, string, float64, int) { return 10, 100, "Kottu", 10, 0 }},
		{"empty name", func() (uint, uint, string, float64, int) { return 10, 100, "", 10, 1 }},
		{"missing item id", func() (uint, uint, string, float64, int) { return 10, 0, "Kottu", 10, 1 }},
	}
	for _, tc := range cases {
		rid, iid, name, price, qty := tc.in()
		if _, _, err := carts.AddItem(1, itemInput(rid, iid, name, price, qty)); !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestUpdateItemRecomputesAmount(t *testing.T) {
	db := setupDB(t)
	carts := NewCartService(db)

	if _, _, err := carts.AddItem(1, itemInput(10, 100, "Kottu", 10, 2)); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, total, err := carts.UpdateItem(1, 100, 7)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cart.Items[0].Quantity != 7 || cart.Items[0].Amount != 70 {
		t.Fatalf("item = qty %d amount %v, want 7/70", cart.Items[0].Quantity, cart.Items[0].Amount)
	}
	if total != 70 {
		t.Fatalf("total = %v, want 70", total)
	}

	if _, _, err := carts.UpdateItem(1, 999, 2); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found for absent item, got %v", err)
	}
	if _, _, err := carts.UpdateItem(1, 100, 0); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation for zero quantity, got %v", err)
	}
}

func TestRemoveLastItemDeletesCart(t *testing.T) {
	db := setupDB(t)
	carts := NewCartService(db)

	if _, _, err := carts.AddItem(1, itemInput(10, 100, "Kottu", 10, 1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, total, err := carts.RemoveItem(1, 100)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if cart != nil || total != 0 {
		t.Fatalf("expected cleared cart, got cart=%v total=%v", cart, total)
	}

	// The row is gone, not left empty.
	if _, _, err := carts.Get(1); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found after clearing, got %v", err)
	}

	var count int64
	db.Model(&models.Cart{}).Count(&count)
	if count != 0 {
		t.Fatalf("cart rows = %d, want 0", count)
	}
}

func TestRemoveOneOfSeveralItems(t *testing.T) {
	db := setupDB(t)
	carts := NewCartService(db)

	carts.AddItem(1, itemInput(10, 100, "Kottu", 10, 1))
	carts.AddItem(1, itemInput(10, 200, "Rice", 5, 2))

	cart, total, err := carts.RemoveItem(1, 100)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ItemID != 200 {
		t.Fatalf("unexpected remaining items: %+v", cart.Items)
	}
	if total != 10 {
		t.Fatalf("total = %v, want 10", total)
	}
}

func TestGetCartNotFound(t *testing.T) {
	db := setupDB(t)
	carts := NewCartService(db)

	if _, _, err := carts.Get(42); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
