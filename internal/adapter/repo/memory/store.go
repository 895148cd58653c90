package memory

import (
	"sync"

	"artifactsbot/internal/app/ports"
)

// DefaultRetention bounds how many journal records are kept per character.
const DefaultRetention = 1000

type Store struct {
	mu        sync.RWMutex
	retention int
	events    map[string][]ports.ActionEventRecord
}

func NewStore() *Store {
	return NewStoreWithRetention(DefaultRetention)
}

func NewStoreWithRetention(retention int) *Store {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Store{
		retention: retention,
		events:    make(map[string][]ports.ActionEventRecord),
	}
}
