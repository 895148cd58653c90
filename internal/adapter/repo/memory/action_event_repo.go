package memory

import (
	"context"

	"artifactsbot/internal/app/ports"
)

type ActionEventRepo struct {
	store *Store
}

func NewActionEventRepo(store *Store) ActionEventRepo {
	return ActionEventRepo{store: store}
}

func (r ActionEventRepo) Append(_ context.Context, record ports.ActionEventRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events := append(r.store.events[record.Character], record)
	if over := len(events) - r.store.retention; over > 0 {
		events = append([]ports.ActionEventRecord(nil), events[over:]...)
	}
	r.store.events[record.Character] = events
	return nil
}

// ListByCharacter returns the most recent records first.
func (r ActionEventRepo) ListByCharacter(_ context.Context, character string, limit int) ([]ports.ActionEventRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := r.store.events[character]
	if len(events) == 0 {
		return nil, ports.ErrNotFound
	}
	n := len(events)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ports.ActionEventRecord, 0, n)
	for i := len(events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, events[i])
	}
	return out, nil
}
