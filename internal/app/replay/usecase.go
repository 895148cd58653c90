package replay

import (
	"context"
	"errors"
	"strings"

	"artifactsbot/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase reads a character's action journal back, newest first.
type UseCase struct {
	Events ports.ActionEventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Character) == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByCharacter(ctx, req.Character, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{Events: events, Summary: summarize(events)}, nil
}

func filterByTimeWindow(events []ports.ActionEventRecord, from, to int64) []ports.ActionEventRecord {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]ports.ActionEventRecord, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// summarize expects events newest first.
func summarize(events []ports.ActionEventRecord) Summary {
	s := Summary{Total: len(events), FailuresByKind: map[string]int{}}
	for i := range events {
		evt := events[i]
		if s.LastOccurredAt == nil {
			at := evt.OccurredAt
			s.LastOccurredAt = &at
		}
		switch evt.Outcome {
		case ports.OutcomeCooldown:
			s.Completed++
			s.CooldownSecondsTotal += evt.CooldownSeconds
		case ports.OutcomeSkipped:
			s.Skipped++
		case ports.OutcomeCooldownRejected:
			s.CooldownRejected++
		default:
			s.Failed++
			s.FailuresByKind[evt.Outcome]++
			if s.LastFailure == nil {
				s.LastFailure = &evt
			}
		}
	}
	return s
}
