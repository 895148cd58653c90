package artifacts

import (
	"fmt"

	"github.com/tidwall/gjson"

	"artifactsbot/internal/app/action"
	"artifactsbot/internal/domain/character"
)

func stateFromData(data gjson.Result) character.State {
	return character.State{
		Name:               data.Get("name").String(),
		Skin:               data.Get("skin").String(),
		Level:              int(data.Get("level").Int()),
		XP:                 int(data.Get("xp").Int()),
		MaxXP:              int(data.Get("max_xp").Int()),
		Gold:               int(data.Get("gold").Int()),
		HP:                 int(data.Get("hp").Int()),
		X:                  int(data.Get("x").Int()),
		Y:                  int(data.Get("y").Int()),
		Cooldown:           int(data.Get("cooldown").Int()),
		CooldownExpiration: data.Get("cooldown_expiration").String(),
		Task:               data.Get("task").String(),
		TaskType:           data.Get("task_type").String(),
		TaskProgress:       int(data.Get("task_progress").Int()),
		TaskTotal:          int(data.Get("task_total").Int()),
	}
}

// inventoryFromData maps the flat inventory_slotN / inventory_slotN_quantity
// fields. Newer API revisions send an "inventory" array instead; that shape
// is accepted as well. Either way the result holds every slot in order.
func inventoryFromData(data gjson.Result) (character.Inventory, error) {
	capacity := data.Get("inventory_max_items")
	if capacity.Type != gjson.Number {
		return character.Inventory{}, fmt.Errorf("%w: missing inventory_max_items", action.ErrProtocolViolation)
	}
	inv := character.Inventory{
		Capacity: int(capacity.Int()),
		Slots:    make([]character.InventorySlot, 0, character.InventorySlotCount),
	}

	if !data.Get(character.SlotName(1)).Exists() {
		if list := data.Get("inventory"); list.IsArray() {
			slots, err := slotsFromList(list)
			if err != nil {
				return character.Inventory{}, err
			}
			inv.Slots = slots
			return inv, nil
		}
	}

	for i := 1; i <= character.InventorySlotCount; i++ {
		name := character.SlotName(i)
		code := data.Get(name)
		if !code.Exists() {
			return character.Inventory{}, fmt.Errorf("%w: missing %s", action.ErrProtocolViolation, name)
		}
		inv.Slots = append(inv.Slots, character.InventorySlot{
			Name:     name,
			Code:     code.String(),
			Quantity: int(data.Get(name + "_quantity").Int()),
		})
	}
	return inv, nil
}

// slotsFromList places each array entry by its 1-based "slot" index. Slots
// absent from the array are empty.
func slotsFromList(list gjson.Result) ([]character.InventorySlot, error) {
	slots := make([]character.InventorySlot, character.InventorySlotCount)
	for i := range slots {
		slots[i].Name = character.SlotName(i + 1)
	}
	seen := make([]bool, character.InventorySlotCount)
	for _, item := range list.Array() {
		slot := item.Get("slot")
		if slot.Type != gjson.Number {
			return nil, fmt.Errorf("%w: inventory entry without slot", action.ErrProtocolViolation)
		}
		idx := int(slot.Int())
		if idx < 1 || idx > character.InventorySlotCount {
			return nil, fmt.Errorf("%w: inventory slot %d out of range", action.ErrProtocolViolation, idx)
		}
		if seen[idx-1] {
			return nil, fmt.Errorf("%w: duplicate inventory slot %d", action.ErrProtocolViolation, idx)
		}
		seen[idx-1] = true
		slots[idx-1].Code = item.Get("code").String()
		slots[idx-1].Quantity = int(item.Get("quantity").Int())
	}
	return slots, nil
}
