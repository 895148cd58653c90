package tasks

import (
	"context"
	"fmt"

	domain "artifactsbot/internal/domain/character"
)

// Actor is the character surface a task script drives. Verbs return once the
// action is queued, not once it has run.
type Actor interface {
	Name() string
	MoveTo(ctx context.Context, task string, x, y int) error
	Fight(ctx context.Context, task string) error
	Gathering(ctx context.Context, task string) error
	Crafting(ctx context.Context, task, code string) error
	Deposit(ctx context.Context, task, code string, quantity int) error
	Inventory(ctx context.Context, task string) (domain.Inventory, error)
}

type Task interface {
	Name() Name
	Run(ctx context.Context, actor Actor) error
}

type Registry map[Name]Task

// DefaultRegistry holds the bundled scripts. Coordinates are map tiles.
func DefaultRegistry() Registry {
	return Registry{
		MineCopper:       gatherTask{name: MineCopper, at: domain.Position{X: 2, Y: 0}, times: 6},
		MineIron:         gatherTask{name: MineIron, at: domain.Position{X: 1, Y: 7}, times: 6},
		CopperIngots:     craftTask{name: CopperIngots, at: domain.Position{X: 1, Y: 5}, code: "copper"},
		KillChickens:     fightTask{name: KillChickens, at: domain.Position{X: 0, Y: 1}},
		KillCows:         fightTask{name: KillCows, at: domain.Position{X: 0, Y: 2}},
		KillYellowSlime:  fightTask{name: KillYellowSlime, at: domain.Position{X: 4, Y: -1}},
		DepositInventory: depositTask{name: DepositInventory, bank: domain.Position{X: 4, Y: 1}},
	}
}

func (r Registry) Lookup(name Name) (Task, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTask, name)
	}
	return t, nil
}

type gatherTask struct {
	name  Name
	at    domain.Position
	times int
}

func (t gatherTask) Name() Name { return t.name }

func (t gatherTask) Run(ctx context.Context, actor Actor) error {
	task := string(t.name)
	if err := actor.MoveTo(ctx, task, t.at.X, t.at.Y); err != nil {
		return err
	}
	for i := 0; i < t.times; i++ {
		if err := actor.Gathering(ctx, task); err != nil {
			return err
		}
	}
	return nil
}

type craftTask struct {
	name Name
	at   domain.Position
	code string
}

func (t craftTask) Name() Name { return t.name }

func (t craftTask) Run(ctx context.Context, actor Actor) error {
	task := string(t.name)
	if err := actor.MoveTo(ctx, task, t.at.X, t.at.Y); err != nil {
		return err
	}
	return actor.Crafting(ctx, task, t.code)
}

type fightTask struct {
	name Name
	at   domain.Position
}

func (t fightTask) Name() Name { return t.name }

func (t fightTask) Run(ctx context.Context, actor Actor) error {
	task := string(t.name)
	if err := actor.MoveTo(ctx, task, t.at.X, t.at.Y); err != nil {
		return err
	}
	return actor.Fight(ctx, task)
}

// depositTask walks to the bank and deposits every non-empty slot. The
// inventory is read right after the move is queued, so it may predate the
// actions still waiting in the queue.
type depositTask struct {
	name Name
	bank domain.Position
}

func (t depositTask) Name() Name { return t.name }

func (t depositTask) Run(ctx context.Context, actor Actor) error {
	task := string(t.name)
	if err := actor.MoveTo(ctx, task, t.bank.X, t.bank.Y); err != nil {
		return err
	}
	inv, err := actor.Inventory(ctx, task)
	if err != nil {
		return fmt.Errorf("read inventory: %w", err)
	}
	for _, slot := range inv.NonEmpty() {
		if err := actor.Deposit(ctx, task, slot.Code, slot.Quantity); err != nil {
			return err
		}
	}
	return nil
}
