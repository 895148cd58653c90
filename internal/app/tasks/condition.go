package tasks

import (
	"context"
	"fmt"

	domain "artifactsbot/internal/domain/character"
)

// StateReader is the read path a condition may use.
type StateReader interface {
	Inventory(ctx context.Context, task string) (domain.Inventory, error)
}

type Condition interface {
	Name() string
	Evaluate(ctx context.Context, state StateReader, task Name) (bool, error)
}

const FullInventoryCondition = "FullInventory"

func ParseCondition(raw string) (Condition, error) {
	switch raw {
	case "":
		return nil, nil
	case FullInventoryCondition:
		return FullInventory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCondition, raw)
	}
}

// FullInventory holds when the carried quantity reached the capacity.
type FullInventory struct{}

func (FullInventory) Name() string { return FullInventoryCondition }

func (FullInventory) Evaluate(ctx context.Context, state StateReader, task Name) (bool, error) {
	inv, err := state.Inventory(ctx, string(task))
	if err != nil {
		return false, err
	}
	return inv.Full(), nil
}
