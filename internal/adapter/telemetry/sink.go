package telemetry

import (
	"context"

	"artifactsbot/internal/app/ports"
)

type Nop struct{}

func (Nop) Emit(context.Context, ports.Event) {}

// Multi fans every event out to each sink in order.
type Multi []ports.EventSink

func (m Multi) Emit(ctx context.Context, evt ports.Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(ctx, evt)
		}
	}
}

func isActionOutcome(name string) bool {
	switch name {
	case ports.EventActionCompleted, ports.EventActionSkipped,
		ports.EventActionCooldownRejected, ports.EventActionFailed:
		return true
	default:
		return false
	}
}
