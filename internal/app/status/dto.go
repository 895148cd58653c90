package status

import "artifactsbot/internal/domain/character"

type Request struct {
	Character string
}

type Response struct {
	State         character.State     `json:"state"`
	Inventory     character.Inventory `json:"inventory"`
	InventoryUsed int                 `json:"inventory_used"`
	InventoryFull bool                `json:"inventory_full"`
}
