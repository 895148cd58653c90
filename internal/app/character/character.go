package character

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"artifactsbot/internal/app/action"
	"artifactsbot/internal/app/ports"
	domain "artifactsbot/internal/domain/character"
)

var ErrInvalidCharacter = errors.New("invalid character")

// Gateway builds game API requests and performs immediate reads.
type Gateway interface {
	BuildAction(task, characterName, verb string, body any) (action.Request, error)
	FetchInventory(ctx context.Context, task, name string) (domain.Inventory, error)
}

// Character is one configured game character: the verbs the task layer calls
// and the queue those verbs feed.
type Character struct {
	name    string
	gateway Gateway
	queue   *action.Queue
}

func New(name string, gateway Gateway, queue *action.Queue) (*Character, error) {
	if strings.TrimSpace(name) == "" || gateway == nil || queue == nil {
		return nil, ErrInvalidCharacter
	}
	return &Character{name: name, gateway: gateway, queue: queue}, nil
}

func (c *Character) Name() string { return c.name }

func (c *Character) MoveTo(ctx context.Context, task string, x, y int) error {
	return c.submit(ctx, task, domain.VerbMove, map[string]any{"x": x, "y": y})
}

func (c *Character) Fight(ctx context.Context, task string) error {
	return c.submit(ctx, task, domain.VerbFight, nil)
}

func (c *Character) Gathering(ctx context.Context, task string) error {
	return c.submit(ctx, task, domain.VerbGathering, nil)
}

func (c *Character) Unequip(ctx context.Context, task, slot string) error {
	return c.submit(ctx, task, domain.VerbUnequip, map[string]any{"slot": slot})
}

func (c *Character) Crafting(ctx context.Context, task, code string) error {
	return c.submit(ctx, task, domain.VerbCrafting, map[string]any{"code": code})
}

func (c *Character) Equip(ctx context.Context, task, code, slot string) error {
	return c.submit(ctx, task, domain.VerbEquip, map[string]any{"code": code, "slot": slot})
}

func (c *Character) Deposit(ctx context.Context, task, code string, quantity int) error {
	return c.submit(ctx, task, domain.VerbDeposit, map[string]any{"code": code, "quantity": quantity})
}

// Inventory reads the live inventory without going through the queue.
func (c *Character) Inventory(ctx context.Context, task string) (domain.Inventory, error) {
	return c.gateway.FetchInventory(ctx, task, c.name)
}

// Loop returns the execution loop draining this character's queue.
func (c *Character) Loop(sink ports.EventSink) action.Loop {
	return action.Loop{Queue: c.queue, Sink: sink, Now: time.Now}
}

func (c *Character) Close() {
	c.queue.Close()
}

func (c *Character) submit(ctx context.Context, task, verb string, body any) error {
	req, err := c.gateway.BuildAction(task, c.name, verb, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", c.name, verb, err)
	}
	return c.queue.Submit(ctx, req)
}
