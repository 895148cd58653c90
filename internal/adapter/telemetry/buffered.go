package telemetry

import (
	"context"
	"log/slog"
	"sync/atomic"

	"artifactsbot/internal/app/ports"
)

const DefaultBufferSize = 256

// Buffered hands events to Next from a single Run goroutine, so a slow sink
// such as the postgres journal never delays the emitting loop. When the
// buffer is full the event is dropped and counted.
type Buffered struct {
	next    ports.EventSink
	logger  *slog.Logger
	events  chan bufferedEvent
	dropped atomic.Uint64
}

type bufferedEvent struct {
	ctx context.Context
	evt ports.Event
}

func NewBuffered(next ports.EventSink, size int, logger *slog.Logger) *Buffered {
	if size <= 0 {
		size = DefaultBufferSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Buffered{next: next, logger: logger, events: make(chan bufferedEvent, size)}
}

func (b *Buffered) Emit(ctx context.Context, evt ports.Event) {
	select {
	case b.events <- bufferedEvent{ctx: context.WithoutCancel(ctx), evt: evt}:
	default:
		n := b.dropped.Add(1)
		b.logger.Warn("event buffer full, event dropped",
			slog.String("event", evt.Name),
			slog.String("character", evt.Character),
			slog.Uint64("dropped_total", n),
		)
	}
}

// Dropped reports how many events were discarded because the buffer was full.
func (b *Buffered) Dropped() uint64 {
	return b.dropped.Load()
}

// Run forwards events until ctx ends, then flushes whatever is still
// buffered and returns nil.
func (b *Buffered) Run(ctx context.Context) error {
	for {
		select {
		case be := <-b.events:
			b.next.Emit(be.ctx, be.evt)
		case <-ctx.Done():
			b.flush()
			return nil
		}
	}
}

func (b *Buffered) flush() {
	for {
		select {
		case be := <-b.events:
			b.next.Emit(be.ctx, be.evt)
		default:
			return
		}
	}
}
