package services

import (
	"context"
	"sync"
)

// Fixed storage keys. Each key holds one whole list serialized as JSON.
const (
	SavedQuotesKey = "cotacoes_salvas"
	FlightsKey     = "portal_voos"
	ClientsKey     = "clientes"
)

// KVStore is the persistence collaborator: a flat key-value store where every
// write replaces the whole value.
type KVStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-process KVStore. When Quota is positive, a Set that
// would push the total stored bytes beyond it fails with ErrQuotaExceeded and
// leaves the previous value in place.
type MemoryStore struct {
	mu    sync.Mutex
	data  map[string]string
	Quota int
}

// NewMemoryStore returns an empty, unbounded MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Quota > 0 {
		used := 0
		for k, v := range m.data {
			if k != key {
				used += len(k) + len(v)
			}
		}
		if used+len(key)+len(value) > m.Quota {
			return ErrQuotaExceeded
		}
	}
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
