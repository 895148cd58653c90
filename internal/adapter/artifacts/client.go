package artifacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"artifactsbot/internal/app/action"
	"artifactsbot/internal/domain/character"
)

const DefaultBaseURL = "https://api.artifactsmmo.com"

const bearerPrefix = "Bearer "

var (
	ErrMissingToken = errors.New("artifacts token is required")
	ErrMissingDoer  = errors.New("artifacts transport is required")
)

type Config struct {
	BaseURL string
	Token   string
	Doer    action.Doer
}

// Client builds requests for the game API. Apart from the token and base URL
// it holds no state, so one value serves every character.
type Client struct {
	baseURL       string
	authorization string
	doer          action.Doer
}

func NewClient(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, ErrMissingToken
	}
	if cfg.Doer == nil {
		return nil, ErrMissingDoer
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(token, bearerPrefix) {
		token = bearerPrefix + token
	}
	return &Client{baseURL: baseURL, authorization: token, doer: cfg.Doer}, nil
}

// Doer is the shared transport, used by every character queue.
func (c *Client) Doer() action.Doer {
	return c.doer
}

func ActionPath(characterName, verb string) string {
	return fmt.Sprintf("my/%s/action/%s", characterName, verb)
}

func CharacterPath(name string) string {
	return "characters/" + name
}

// Build prepares a request without touching the network. The description is
// "<task> <METHOD> <path>" followed by the JSON body when there is one.
func (c *Client) Build(task, method, path string, body any) (action.Request, error) {
	method = strings.ToUpper(method)
	req := protocol.NewRequest(method, c.baseURL+"/"+strings.TrimLeft(path, "/"), nil)
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Accept", "application/json")

	description := fmt.Sprintf("%s %s %s", task, method, path)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return action.Request{}, fmt.Errorf("encode %s body: %w", path, err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(raw)
		description = description + " " + string(raw)
	}
	return action.NewRequest(task, description, req), nil
}

// BuildAction addresses verb for the named character.
func (c *Client) BuildAction(task, characterName, verb string, body any) (action.Request, error) {
	return c.Build(task, consts.MethodPost, ActionPath(characterName, verb), body)
}

// FetchCharacter reads the character immediately, bypassing the queue. The
// response goes through the same envelope classification as queued actions.
func (c *Client) FetchCharacter(ctx context.Context, task, name string) (character.State, error) {
	req, err := c.Build(task, consts.MethodGet, CharacterPath(name), nil)
	if err != nil {
		return character.State{}, err
	}
	data, err := action.Send(ctx, c.doer, req.HTTP)
	if err != nil {
		return character.State{}, fmt.Errorf("fetch character %s: %w", name, err)
	}
	state := stateFromData(data)
	state.Inventory, err = inventoryFromData(data)
	if err != nil {
		return character.State{}, fmt.Errorf("fetch character %s: %w", name, err)
	}
	return state, nil
}

func (c *Client) FetchInventory(ctx context.Context, task, name string) (character.Inventory, error) {
	state, err := c.FetchCharacter(ctx, task, name)
	if err != nil {
		return character.Inventory{}, err
	}
	return state.Inventory, nil
}
