package tasks

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTask      = errors.New("unknown task")
	ErrUnknownCondition = errors.New("unknown condition")
)

// Name identifies a task script in the characters file.
type Name string

const (
	CopperIngots     Name = "CopperIngots"
	KillChickens     Name = "KillChickens"
	DepositInventory Name = "DepositInventory"
	KillYellowSlime  Name = "KillYellowSlime"
	KillCows         Name = "KillCows"
	MineCopper       Name = "MineCopper"
	MineIron         Name = "MineIron"
)

func Names() []Name {
	return []Name{CopperIngots, KillChickens, DepositInventory, KillYellowSlime, KillCows, MineCopper, MineIron}
}

func ParseName(raw string) (Name, error) {
	for _, n := range Names() {
		if string(n) == raw {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTask, raw)
}

func (n Name) String() string { return string(n) }
