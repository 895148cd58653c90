package inmemory

import "sync"

type Snapshot struct {
	ActionTotal            uint64            `json:"action_total"`
	ActionCompleted        uint64            `json:"action_completed"`
	ActionSkipped          uint64            `json:"action_skipped"`
	ActionCooldownRejected uint64            `json:"action_cooldown_rejected"`
	ActionFailure          uint64            `json:"action_failure"`
	CooldownSecondsTotal   uint64            `json:"cooldown_seconds_total"`
	FailuresByKind         map[string]uint64 `json:"failures_by_kind"`
}

// Recorder counts action outcomes across every character.
type Recorder struct {
	mu              sync.Mutex
	completed       uint64
	skipped         uint64
	rejected        uint64
	failure         uint64
	cooldownSeconds uint64
	byKind          map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordCompleted(cooldownSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed++
	if cooldownSeconds > 0 {
		r.cooldownSeconds += uint64(cooldownSeconds)
	}
}

func (r *Recorder) RecordSkipped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped++
}

func (r *Recorder) RecordCooldownRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func (r *Recorder) RecordFailure(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	if kind == "" {
		kind = "unknown"
	}
	r.byKind[kind]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionCompleted:        r.completed,
		ActionSkipped:          r.skipped,
		ActionCooldownRejected: r.rejected,
		ActionFailure:          r.failure,
		ActionTotal:            r.completed + r.skipped + r.rejected + r.failure,
		CooldownSecondsTotal:   r.cooldownSeconds,
		FailuresByKind:         make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byKind {
		out.FailuresByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
