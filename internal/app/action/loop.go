package action

import (
	"context"
	"errors"
	"time"

	"artifactsbot/internal/app/ports"
)

// DefaultCooldownBackoff is the pause after the server rejects an action
// because the character is still on cooldown.
const DefaultCooldownBackoff = 5 * time.Second

// Consumer is the consuming side of a Queue.
type Consumer interface {
	Character() string
	PopAndExecute(ctx context.Context) (Outcome, error)
}

type SleepFunc func(ctx context.Context, d time.Duration) error

// Loop drains one character's queue forever, sleeping for each reported
// cooldown. Failed items are not requeued.
type Loop struct {
	Queue           Consumer
	Sink            ports.EventSink
	Sleep           SleepFunc
	CooldownBackoff time.Duration
	Now             func() time.Time
}

// Run returns nil when the queue is closed and ctx.Err() when ctx ends.
// Action failures never stop the loop.
func (l Loop) Run(ctx context.Context) error {
	sink := l.Sink
	if sink == nil {
		sink = nopSink{}
	}
	sleep := l.Sleep
	if sleep == nil {
		sleep = SleepContext
	}
	backoff := l.CooldownBackoff
	if backoff <= 0 {
		backoff = DefaultCooldownBackoff
	}
	nowFn := l.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	character := l.Queue.Character()

	stop := func(err error) error {
		evt := ports.Event{
			Name:       ports.EventLoopStopped,
			Severity:   ports.SeverityInfo,
			Character:  character,
			OccurredAt: nowFn(),
		}
		if err != nil {
			evt.Message = err.Error()
		}
		sink.Emit(context.WithoutCancel(ctx), evt)
		return err
	}

	for {
		out, err := l.Queue.PopAndExecute(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) {
				return stop(nil)
			}
			if ctx.Err() != nil {
				return stop(ctx.Err())
			}
			if errors.Is(err, ErrCooldownRejected) {
				sink.Emit(ctx, ports.Event{
					Name:        ports.EventActionCooldownRejected,
					Severity:    ports.SeverityWarn,
					Character:   character,
					Task:        out.Task,
					ActionID:    out.ActionID,
					Description: out.Description,
					Outcome:     ports.OutcomeCooldownRejected,
					ErrorCode:   CodeCooldownActive,
					Message:     "on cooldown",
					OccurredAt:  nowFn(),
				})
				if err := sleep(ctx, backoff); err != nil {
					return stop(err)
				}
				continue
			}
			sink.Emit(ctx, failureEvent(character, out, err, nowFn()))
			continue
		}

		if out.Status == StatusSkipped {
			sink.Emit(ctx, ports.Event{
				Name:        ports.EventActionSkipped,
				Severity:    ports.SeverityDebug,
				Character:   character,
				Task:        out.Task,
				ActionID:    out.ActionID,
				Description: out.Description,
				Outcome:     ports.OutcomeSkipped,
				ErrorCode:   CodeNoOp,
				OccurredAt:  nowFn(),
			})
			continue
		}

		sink.Emit(ctx, ports.Event{
			Name:            ports.EventActionCompleted,
			Severity:        ports.SeverityInfo,
			Character:       character,
			Task:            out.Task,
			ActionID:        out.ActionID,
			Description:     out.Description,
			Outcome:         ports.OutcomeCooldown,
			CooldownSeconds: out.CooldownSeconds,
			OccurredAt:      nowFn(),
		})
		if delay := out.Delay(); delay > 0 {
			if err := sleep(ctx, delay); err != nil {
				return stop(err)
			}
		}
	}
}

func failureEvent(character string, out Outcome, err error, at time.Time) ports.Event {
	evt := ports.Event{
		Name:        ports.EventActionFailed,
		Severity:    ports.SeverityError,
		Character:   character,
		Task:        out.Task,
		ActionID:    out.ActionID,
		Description: out.Description,
		Outcome:     string(KindOf(err)),
		Message:     err.Error(),
		OccurredAt:  at,
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		evt.ErrorCode = apiErr.Code
		evt.Message = apiErr.Message
	}
	return evt
}

// SleepContext waits for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
