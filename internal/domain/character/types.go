package character

import "fmt"

// InventorySlotCount is the fixed number of inventory slots exposed by the
// character endpoint.
const InventorySlotCount = 20

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type State struct {
	Name               string    `json:"name"`
	Skin               string    `json:"skin"`
	Level              int       `json:"level"`
	XP                 int       `json:"xp"`
	MaxXP              int       `json:"max_xp"`
	Gold               int       `json:"gold"`
	HP                 int       `json:"hp"`
	X                  int       `json:"x"`
	Y                  int       `json:"y"`
	Cooldown           int       `json:"cooldown"`
	CooldownExpiration string    `json:"cooldown_expiration"`
	Task               string    `json:"task"`
	TaskType           string    `json:"task_type"`
	TaskProgress       int       `json:"task_progress"`
	TaskTotal          int       `json:"task_total"`
	Inventory          Inventory `json:"-"`
}

func (s State) Position() Position {
	return Position{X: s.X, Y: s.Y}
}

type InventorySlot struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type Inventory struct {
	Capacity int             `json:"capacity"`
	Slots    []InventorySlot `json:"slots"`
}

// SlotName returns the wire name of the 1-based inventory slot index.
func SlotName(index int) string {
	return fmt.Sprintf("inventory_slot%d", index)
}

func (inv Inventory) TotalQuantity() int {
	total := 0
	for _, slot := range inv.Slots {
		total += slot.Quantity
	}
	return total
}

// Full reports whether the carried quantity reached the capacity.
func (inv Inventory) Full() bool {
	return inv.TotalQuantity() >= inv.Capacity
}

func (inv Inventory) NonEmpty() []InventorySlot {
	out := make([]InventorySlot, 0, len(inv.Slots))
	for _, slot := range inv.Slots {
		if slot.Quantity > 0 {
			out = append(out, slot)
		}
	}
	return out
}
