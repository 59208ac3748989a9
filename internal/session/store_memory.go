package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process. Used when no Redis is configured
// (development) and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
	now     func() time.Time
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{records: make(map[string]Record), now: now}
}

func (store *MemoryStore) Save(_ context.Context, record Record, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	record.ExpiresAt = store.now().Add(ttl)
	store.records[record.ID] = record
	return nil
}

func (store *MemoryStore) Find(_ context.Context, id string) (*Record, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	record, ok := store.records[id]
	if !ok {
		return nil, nil
	}
	if !store.now().Before(record.ExpiresAt) {
		delete(store.records, id)
		return nil, nil
	}
	return &record, nil
}

func (store *MemoryStore) Delete(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.records, id)
	return nil
}
