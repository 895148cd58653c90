package character

// Action verbs accepted under my/{character}/action/.
const (
	VerbMove      = "move"
	VerbFight     = "fight"
	VerbGathering = "gathering"
	VerbUnequip   = "unequip"
	VerbCrafting  = "crafting"
	VerbEquip     = "equip"
	VerbDeposit   = "bank/deposit"
)
