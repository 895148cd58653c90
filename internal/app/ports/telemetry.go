package ports

import (
	"context"
	"time"
)

// Severity describes the event severity level.
type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Event names emitted by the action engine and the task layer.
const (
	EventActionExecuting        = "action.executing"
	EventActionCompleted        = "action.completed"
	EventActionSkipped          = "action.skipped"
	EventActionCooldownRejected = "action.cooldown_rejected"
	EventActionFailed           = "action.failed"
	EventLoopStopped            = "loop.stopped"
	EventTaskStarted            = "task.started"
	EventTaskFailed             = "task.failed"
	EventTaskSkipped            = "task.skipped"
	EventConditionFailed        = "condition.failed"
	EventRunnerIdle             = "runner.idle"
)

// Outcome values carried by action.* events.
const (
	OutcomeCooldown         = "cooldown"
	OutcomeSkipped          = "skipped"
	OutcomeCooldownRejected = "cooldown_rejected"
)

type Event struct {
	Name            string
	Severity        Severity
	Character       string
	Task            string
	ActionID        string
	Description     string
	Outcome         string
	CooldownSeconds int
	ErrorCode       int
	Message         string
	Attributes      map[string]any
	OccurredAt      time.Time
}

// EventSink receives structured events. Implementations must be safe for
// concurrent use and must not block the caller for long.
type EventSink interface {
	Emit(ctx context.Context, evt Event)
}
