package character

import "testing"

func TestInventory_FullAtCapacity(t *testing.T) {
	inv := Inventory{
		Capacity: 10,
		Slots: []InventorySlot{
			{Name: SlotName(1), Code: "copper_ore", Quantity: 6},
			{Name: SlotName(2), Code: "", Quantity: 0},
			{Name: SlotName(3), Code: "iron_ore", Quantity: 4},
		},
	}
	if got := inv.TotalQuantity(); got != 10 {
		t.Fatalf("expected total 10, got %d", got)
	}
	if !inv.Full() {
		t.Fatalf("expected inventory full at capacity")
	}
}

func TestInventory_NotFullBelowCapacity(t *testing.T) {
	inv := Inventory{
		Capacity: 100,
		Slots:    []InventorySlot{{Name: SlotName(1), Code: "feather", Quantity: 99}},
	}
	if inv.Full() {
		t.Fatalf("expected inventory not full")
	}
}

func TestInventory_NonEmptyKeepsSlotOrder(t *testing.T) {
	inv := Inventory{Slots: []InventorySlot{
		{Name: SlotName(1), Code: "a", Quantity: 1},
		{Name: SlotName(2)},
		{Name: SlotName(3), Code: "b", Quantity: 2},
	}}
	got := inv.NonEmpty()
	if len(got) != 2 || got[0].Code != "a" || got[1].Code != "b" {
		t.Fatalf("unexpected non-empty slots: %+v", got)
	}
}

func TestSlotName(t *testing.T) {
	if got, want := SlotName(20), "inventory_slot20"; got != want {
		t.Fatalf("slot name mismatch: got=%q want=%q", got, want)
	}
}
