package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"artifactsbot/internal/app/ports"
)

type countingMetrics struct {
	completed []int
	skipped   int
	rejected  int
	failures  []string
}

func (m *countingMetrics) RecordCompleted(s int)     { m.completed = append(m.completed, s) }
func (m *countingMetrics) RecordSkipped()            { m.skipped++ }
func (m *countingMetrics) RecordCooldownRejected()   { m.rejected++ }
func (m *countingMetrics) RecordFailure(kind string) { m.failures = append(m.failures, kind) }

type fakeJournal struct {
	records []ports.ActionEventRecord
	err     error
}

func (j *fakeJournal) Append(_ context.Context, rec ports.ActionEventRecord) error {
	if j.err != nil {
		return j.err
	}
	j.records = append(j.records, rec)
	return nil
}

func (j *fakeJournal) ListByCharacter(context.Context, string, int) ([]ports.ActionEventRecord, error) {
	return j.records, nil
}

func outcomeEvents() []ports.Event {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []ports.Event{
		{Name: ports.EventActionExecuting, Severity: ports.SeverityInfo, Character: "alice", ActionID: "a1", OccurredAt: at},
		{Name: ports.EventActionCompleted, Severity: ports.SeverityInfo, Character: "alice", Task: "MineCopper", ActionID: "a1", Outcome: ports.OutcomeCooldown, CooldownSeconds: 25, OccurredAt: at},
		{Name: ports.EventActionSkipped, Severity: ports.SeverityDebug, Character: "alice", ActionID: "a2", Outcome: ports.OutcomeSkipped, ErrorCode: 490, OccurredAt: at},
		{Name: ports.EventActionCooldownRejected, Severity: ports.SeverityWarn, Character: "alice", ActionID: "a3", Outcome: ports.OutcomeCooldownRejected, ErrorCode: 499, OccurredAt: at},
		{Name: ports.EventActionFailed, Severity: ports.SeverityError, Character: "alice", ActionID: "a4", Outcome: "api", ErrorCode: 497, Message: "inventory full", OccurredAt: at},
		{Name: ports.EventTaskStarted, Severity: ports.SeverityInfo, Character: "alice", Task: "KillCows", OccurredAt: at},
	}
}

func TestMetricsSink(t *testing.T) {
	m := &countingMetrics{}
	sink := MetricsSink{Metrics: m}
	for _, evt := range outcomeEvents() {
		sink.Emit(context.Background(), evt)
	}
	if len(m.completed) != 1 || m.completed[0] != 25 {
		t.Fatalf("unexpected completed: %v", m.completed)
	}
	if m.skipped != 1 || m.rejected != 1 {
		t.Fatalf("unexpected counts: skipped=%d rejected=%d", m.skipped, m.rejected)
	}
	if len(m.failures) != 1 || m.failures[0] != "api" {
		t.Fatalf("unexpected failures: %v", m.failures)
	}
}

func TestJournalSink_RecordsOnlyOutcomes(t *testing.T) {
	j := &fakeJournal{}
	sink := JournalSink{Repo: j}
	for _, evt := range outcomeEvents() {
		sink.Emit(context.Background(), evt)
	}
	if len(j.records) != 4 {
		t.Fatalf("expected 4 journal records, got %d", len(j.records))
	}
	first := j.records[0]
	if first.EventID == "" || first.ActionID != "a1" || first.Task != "MineCopper" || first.CooldownSeconds != 25 {
		t.Fatalf("unexpected record: %+v", first)
	}
	if j.records[3].ErrorCode != 497 || j.records[3].Message != "inventory full" {
		t.Fatalf("unexpected failure record: %+v", j.records[3])
	}
}

func TestJournalSink_LogsAppendFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sink := JournalSink{Repo: &fakeJournal{err: errors.New("db down")}, Logger: logger}
	sink.Emit(context.Background(), outcomeEvents()[1])
	if !strings.Contains(buf.String(), "journal append failed") || !strings.Contains(buf.String(), "db down") {
		t.Fatalf("expected append failure to be logged, got %q", buf.String())
	}
}

func TestLogSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "json", "debug")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	NewLogSink(logger).Emit(context.Background(), outcomeEvents()[4])

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if line["level"] != "ERROR" || line["msg"] != ports.EventActionFailed {
		t.Fatalf("unexpected level/msg: %v", line)
	}
	if line["character"] != "alice" || line["error_code"] != float64(497) || line["error"] != "inventory full" {
		t.Fatalf("unexpected attrs: %v", line)
	}
}

func TestLogSink_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "text", "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	NewLogSink(logger).Emit(context.Background(), outcomeEvents()[2])
	if buf.Len() != 0 {
		t.Fatalf("debug event must be filtered at info level, got %q", buf.String())
	}
}

func TestNewLogger_RejectsUnknownSettings(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "xml", "info"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := NewLogger(&bytes.Buffer{}, "json", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestMulti_FansOut(t *testing.T) {
	m := &countingMetrics{}
	j := &fakeJournal{}
	sink := Multi{MetricsSink{Metrics: m}, nil, JournalSink{Repo: j}, Nop{}}
	sink.Emit(context.Background(), outcomeEvents()[1])
	if len(m.completed) != 1 || len(j.records) != 1 {
		t.Fatalf("expected both sinks to receive the event")
	}
}

type gatedSink struct {
	entered  chan struct{}
	gate     chan struct{}
	received chan ports.Event
}

func (s gatedSink) Emit(_ context.Context, evt ports.Event) {
	s.entered <- struct{}{}
	<-s.gate
	s.received <- evt
}

func TestBuffered_EmitDoesNotWaitForSlowSink(t *testing.T) {
	next := gatedSink{
		entered:  make(chan struct{}, 8),
		gate:     make(chan struct{}),
		received: make(chan ports.Event, 8),
	}
	var buf bytes.Buffer
	b := NewBuffered(next, 2, slog.New(slog.NewTextHandler(&buf, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	events := outcomeEvents()
	b.Emit(context.Background(), events[1])
	select {
	case <-next.entered:
	case <-time.After(2 * time.Second):
		t.Fatalf("first event never reached the sink")
	}

	// The sink is stalled: two events fit in the buffer, the third is dropped.
	emitted := make(chan struct{})
	go func() {
		for _, evt := range events[2:5] {
			b.Emit(context.Background(), evt)
		}
		close(emitted)
	}()
	select {
	case <-emitted:
	case <-time.After(2 * time.Second):
		t.Fatalf("Emit blocked on a stalled sink")
	}
	if b.Dropped() != 1 {
		t.Fatalf("expected 1 dropped event, got %d", b.Dropped())
	}
	if !strings.Contains(buf.String(), "event buffer full") {
		t.Fatalf("expected drop to be logged, got %q", buf.String())
	}

	cancel()
	close(next.gate)
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := len(next.received); got != 3 {
		t.Fatalf("expected 3 forwarded events after flush, got %d", got)
	}
}

func TestBuffered_ForwardsToJournal(t *testing.T) {
	j := &fakeJournal{}
	b := NewBuffered(JournalSink{Repo: j}, 0, nil)
	for _, evt := range outcomeEvents() {
		b.Emit(context.Background(), evt)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(j.records) != 4 || j.records[0].ActionID != "a1" {
		t.Fatalf("unexpected journal records: %+v", j.records)
	}
}
