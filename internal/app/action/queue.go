package action

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"artifactsbot/internal/app/ports"
)

const tracerName = "artifactsbot/internal/app/action"

// Queue is the per-character hand-off between the task layer and the single
// consumer that talks to the game API. The slot token is taken on Submit and
// returned once the request has been executed, so at most one request is
// buffered or in flight at any time.
type Queue struct {
	character string
	doer      Doer
	sink      ports.EventSink
	tracer    trace.Tracer
	now       func() time.Time

	items     chan Request
	slot      chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
	consumeMu sync.Mutex
}

type Option func(*Queue)

func WithSink(sink ports.EventSink) Option {
	return func(q *Queue) {
		if sink != nil {
			q.sink = sink
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(q *Queue) {
		if tracer != nil {
			q.tracer = tracer
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		if now != nil {
			q.now = now
		}
	}
}

func NewQueue(character string, doer Doer, opts ...Option) *Queue {
	q := &Queue{
		character: character,
		doer:      doer,
		sink:      nopSink{},
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
		items:     make(chan Request, 1),
		slot:      make(chan struct{}, 1),
		closed:    make(chan struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

func (q *Queue) Character() string { return q.character }

// Submit blocks until the slot is free and then deposits req.
func (q *Queue) Submit(ctx context.Context, req Request) error {
	if req.HTTP == nil {
		return ErrInvalidRequest
	}
	select {
	case <-q.closed:
		return ErrQueueClosed
	default:
	}

	select {
	case q.slot <- struct{}{}:
	case <-q.closed:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	// The slot is ours, so the buffer has room.
	q.items <- req
	return nil
}

// PopAndExecute waits for the next request, executes it and reports the
// resulting cooldown. It returns ErrQueueClosed once the queue is closed and
// drained.
func (q *Queue) PopAndExecute(ctx context.Context) (Outcome, error) {
	q.consumeMu.Lock()
	defer q.consumeMu.Unlock()

	var req Request
	select {
	case req = <-q.items:
	case <-q.closed:
		select {
		case req = <-q.items:
		default:
			return Outcome{}, ErrQueueClosed
		}
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
	defer func() { <-q.slot }()

	return q.execute(ctx, req)
}

// Close stops accepting submissions. A request already deposited is still
// handed to the consumer.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.closed)
	})
}

func (q *Queue) execute(ctx context.Context, req Request) (Outcome, error) {
	ctx, span := q.tracer.Start(ctx, "action.execute", trace.WithAttributes(
		attribute.String("character", q.character),
		attribute.String("action.id", req.ID),
		attribute.String("action.task", req.Task),
		attribute.String("action.description", req.Description),
	))
	defer span.End()

	q.sink.Emit(ctx, ports.Event{
		Name:        ports.EventActionExecuting,
		Severity:    ports.SeverityInfo,
		Character:   q.character,
		Task:        req.Task,
		ActionID:    req.ID,
		Description: req.Description,
		OccurredAt:  q.now(),
	})

	out := Outcome{ActionID: req.ID, Task: req.Task, Description: req.Description}
	data, err := Send(ctx, q.doer, req.HTTP)
	if err == nil {
		out.Status = StatusCooldown
		out.CooldownSeconds, err = cooldownSeconds(data)
	} else if errors.Is(err, ErrNoOp) {
		out.Status = StatusSkipped
		err = nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}

	span.SetAttributes(
		attribute.String("action.outcome", out.Status.String()),
		attribute.Int("action.cooldown_seconds", out.CooldownSeconds),
	)
	return out, nil
}

type nopSink struct{}

func (nopSink) Emit(context.Context, ports.Event) {}
