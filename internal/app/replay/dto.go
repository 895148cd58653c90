package replay

import (
	"time"

	"artifactsbot/internal/app/ports"
)

type Request struct {
	Character    string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Summary struct {
	Total                int                      `json:"total"`
	Completed            int                      `json:"completed"`
	Skipped              int                      `json:"skipped"`
	CooldownRejected     int                      `json:"cooldown_rejected"`
	Failed               int                      `json:"failed"`
	CooldownSecondsTotal int                      `json:"cooldown_seconds_total"`
	FailuresByKind       map[string]int           `json:"failures_by_kind"`
	LastOccurredAt       *time.Time               `json:"last_occurred_at,omitempty"`
	LastFailure          *ports.ActionEventRecord `json:"last_failure,omitempty"`
}

type Response struct {
	Events  []ports.ActionEventRecord `json:"events"`
	Summary Summary                   `json:"summary"`
}
