package orchestrator

import (
	"sync"

	"github.com/google/uuid"
)

// Claims is the in-process active-extraction registry shared by the live queue
// and the batch runner. A document may have at most one extraction in flight
// at a time, whichever scheduler started it.
type Claims struct {
	mu     sync.Mutex
	active map[uuid.UUID]struct{}
}

func NewClaims() *Claims {
	return &Claims{active: make(map[uuid.UUID]struct{})}
}

// Claim atomically marks the document as having an active extraction. It
// returns false when another extraction already holds the claim.
func (c *Claims) Claim(documentID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, held := c.active[documentID]; held {
		return false
	}
	c.active[documentID] = struct{}{}
	return true
}

// Release frees the claim. Safe to call for a document that is not claimed.
func (c *Claims) Release(documentID uuid.UUID) {
	c.mu.Lock()
	delete(c.active, documentID)
	c.mu.Unlock()
}

// Held reports whether the document currently has an active extraction.
func (c *Claims) Held(documentID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, held := c.active[documentID]
	return held
}
