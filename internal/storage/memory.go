package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps objects in process memory. Used by the local batch CLI's
// in-memory mode and by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

var _ Storage = (*MemoryStore)(nil)

func (m *MemoryStore) Download(_ context.Context, storageRef string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[storageRef]
	if !ok {
		return nil, fmt.Errorf("object %s not found", storageRef)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryStore) Upload(_ context.Context, data []byte, _ string) (string, error) {
	key := uuid.New().String()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.mu.Lock()
	m.objects[key] = stored
	m.mu.Unlock()
	return key, nil
}

func (m *MemoryStore) Delete(_ context.Context, storageRef string) error {
	m.mu.Lock()
	delete(m.objects, storageRef)
	m.mu.Unlock()
	return nil
}
