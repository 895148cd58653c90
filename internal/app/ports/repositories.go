package ports

import (
	"context"
	"time"
)

type ActionEventRecord struct {
	EventID         string    `json:"event_id"`
	Character       string    `json:"character"`
	Task            string    `json:"task"`
	ActionID        string    `json:"action_id"`
	Description     string    `json:"description"`
	Outcome         string    `json:"outcome"`
	CooldownSeconds int       `json:"cooldown_seconds"`
	ErrorCode       int       `json:"error_code,omitempty"`
	Message         string    `json:"message,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type ActionEventRepository interface {
	Append(ctx context.Context, record ActionEventRecord) error
	// ListByCharacter returns the most recent records first.
	ListByCharacter(ctx context.Context, character string, limit int) ([]ActionEventRecord, error)
}
