package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"artifactsbot/internal/app/ports"
)

// JournalSink appends every action outcome to the action journal. Append
// failures are logged and dropped.
type JournalSink struct {
	Repo   ports.ActionEventRepository
	Logger *slog.Logger
}

func (s JournalSink) Emit(ctx context.Context, evt ports.Event) {
	if s.Repo == nil || !isActionOutcome(evt.Name) {
		return
	}
	at := evt.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}
	rec := ports.ActionEventRecord{
		EventID:         uuid.NewString(),
		Character:       evt.Character,
		Task:            evt.Task,
		ActionID:        evt.ActionID,
		Description:     evt.Description,
		Outcome:         evt.Outcome,
		CooldownSeconds: evt.CooldownSeconds,
		ErrorCode:       evt.ErrorCode,
		Message:         evt.Message,
		OccurredAt:      at.UTC(),
	}
	if err := s.Repo.Append(context.WithoutCancel(ctx), rec); err != nil {
		logger := s.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("journal append failed",
			slog.String("character", evt.Character),
			slog.String("action_id", evt.ActionID),
			slog.Any("error", err),
		)
	}
}
