package tasks

import (
	"context"
	"errors"
	"time"

	"artifactsbot/internal/app/action"
	"artifactsbot/internal/app/ports"
)

const DefaultIdleDelay = 5 * time.Second

// Runner cycles a character's plan until ctx ends or its queue closes.
type Runner struct {
	Actor     Actor
	Plan      Plan
	Sink      ports.EventSink
	Sleep     action.SleepFunc
	IdleDelay time.Duration
	Now       func() time.Time
}

// Run never gives up on a failing step: condition and task errors are
// reported and the next step is tried.
func (r Runner) Run(ctx context.Context) error {
	if len(r.Plan) == 0 {
		return ErrEmptyPlan
	}
	sink := r.Sink
	if sink == nil {
		sink = nopSink{}
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = action.SleepContext
	}
	idle := r.IdleDelay
	if idle <= 0 {
		idle = DefaultIdleDelay
	}
	nowFn := r.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	character := r.Actor.Name()
	event := func(name string, sev ports.Severity, task Name, err error) ports.Event {
		evt := ports.Event{Name: name, Severity: sev, Character: character, Task: string(task), OccurredAt: nowFn()}
		if err != nil {
			evt.Message = err.Error()
			evt.Outcome = string(action.KindOf(err))
		}
		return evt
	}

	for {
		ran := 0
		for _, step := range r.Plan {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := step.Task.Name()
			if step.Condition != nil {
				ok, err := step.Condition.Evaluate(ctx, r.Actor, name)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					evt := event(ports.EventConditionFailed, ports.SeverityError, name, err)
					evt.Attributes = map[string]any{"condition": step.Condition.Name()}
					sink.Emit(ctx, evt)
					continue
				}
				if !ok {
					sink.Emit(ctx, event(ports.EventTaskSkipped, ports.SeverityDebug, name, nil))
					continue
				}
			}

			sink.Emit(ctx, event(ports.EventTaskStarted, ports.SeverityInfo, name, nil))
			if err := step.Task.Run(ctx, r.Actor); err != nil {
				if errors.Is(err, action.ErrQueueClosed) {
					return nil
				}
				if ctx.Err() != nil {
					return ctx.Err()
				}
				sink.Emit(ctx, event(ports.EventTaskFailed, ports.SeverityError, name, err))
				continue
			}
			ran++
		}

		if ran == 0 {
			sink.Emit(ctx, event(ports.EventRunnerIdle, ports.SeverityDebug, "", nil))
			if err := sleep(ctx, idle); err != nil {
				return err
			}
		}
	}
}

type nopSink struct{}

func (nopSink) Emit(context.Context, ports.Event) {}
