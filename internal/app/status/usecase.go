package status

import (
	"context"
	"errors"
	"strings"

	"artifactsbot/internal/domain/character"
)

var ErrInvalidRequest = errors.New("invalid status request")

// ReadTask labels status reads in request descriptions.
const ReadTask = "Status"

type CharacterReader interface {
	FetchCharacter(ctx context.Context, task, name string) (character.State, error)
}

type UseCase struct {
	Reader CharacterReader
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Character) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.Reader.FetchCharacter(ctx, ReadTask, req.Character)
	if err != nil {
		return Response{}, err
	}
	return Response{
		State:         state,
		Inventory:     state.Inventory,
		InventoryUsed: state.Inventory.TotalQuantity(),
		InventoryFull: state.Inventory.Full(),
	}, nil
}
