package telemetry

import (
	"context"

	"artifactsbot/internal/app/ports"
)

// MetricsSink turns action outcome events into counter updates.
type MetricsSink struct {
	Metrics ports.ActionMetrics
}

func (s MetricsSink) Emit(_ context.Context, evt ports.Event) {
	if s.Metrics == nil {
		return
	}
	switch evt.Name {
	case ports.EventActionCompleted:
		s.Metrics.RecordCompleted(evt.CooldownSeconds)
	case ports.EventActionSkipped:
		s.Metrics.RecordSkipped()
	case ports.EventActionCooldownRejected:
		s.Metrics.RecordCooldownRejected()
	case ports.EventActionFailed:
		s.Metrics.RecordFailure(evt.Outcome)
	}
}
