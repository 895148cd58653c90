package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"artifactsbot/internal/app/ports"
)

// NewLogger builds the process logger. format is "json" or "text"; level is
// one of debug, info, warn, error.
func NewLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		lvl = slog.LevelInfo
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

type LogSink struct {
	Logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return LogSink{Logger: logger}
}

func (s LogSink) Emit(ctx context.Context, evt ports.Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{slog.String("character", evt.Character)}
	if evt.Task != "" {
		attrs = append(attrs, slog.String("task", evt.Task))
	}
	if evt.ActionID != "" {
		attrs = append(attrs, slog.String("action_id", evt.ActionID))
	}
	if evt.Description != "" {
		attrs = append(attrs, slog.String("action", evt.Description))
	}
	if evt.Outcome != "" {
		attrs = append(attrs, slog.String("outcome", evt.Outcome))
	}
	if evt.Name == ports.EventActionCompleted {
		attrs = append(attrs, slog.Int("cooldown_seconds", evt.CooldownSeconds))
	}
	if evt.ErrorCode != 0 {
		attrs = append(attrs, slog.Int("error_code", evt.ErrorCode))
	}
	if evt.Message != "" {
		attrs = append(attrs, slog.String("error", evt.Message))
	}
	for k, v := range evt.Attributes {
		attrs = append(attrs, slog.Any(k, v))
	}
	logger.LogAttrs(ctx, levelOf(evt.Severity), evt.Name, attrs...)
}

func levelOf(sev ports.Severity) slog.Level {
	switch sev {
	case ports.SeverityDebug:
		return slog.LevelDebug
	case ports.SeverityWarn:
		return slog.LevelWarn
	case ports.SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
