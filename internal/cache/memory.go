package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryCache implements PartialCache in process memory. The default when no
// Redis URL is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

var _ PartialCache = (*MemoryCache)(nil)

func (c *MemoryCache) SetPartial(_ context.Context, documentID uuid.UUID, data []byte, ttl time.Duration) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[PartialKey(documentID)] = memoryEntry{data: stored, expiresAt: expires}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) GetPartial(_ context.Context, documentID uuid.UUID) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[PartialKey(documentID)]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, PartialKey(documentID))
		c.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(entry.data))
	copy(out, entry.data)
	return out, true, nil
}

func (c *MemoryCache) DeletePartial(_ context.Context, documentID uuid.UUID) error {
	c.mu.Lock()
	delete(c.entries, PartialKey(documentID))
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Ping(_ context.Context) error { return nil }
