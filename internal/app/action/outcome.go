package action

import "time"

type Status int

const (
	StatusCooldown Status = iota
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusCooldown:
		return "cooldown"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome describes one executed action. On failure only the identity fields
// are populated.
type Outcome struct {
	ActionID        string
	Task            string
	Description     string
	Status          Status
	CooldownSeconds int
}

// Delay is how long the character must wait before its next action.
func (o Outcome) Delay() time.Duration {
	if o.Status == StatusSkipped {
		return 0
	}
	return time.Duration(o.CooldownSeconds) * time.Second
}
