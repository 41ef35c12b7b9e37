package orchestrator

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsSingleHolder(t *testing.T) {
	c := NewClaims()
	docID := uuid.New()

	require.True(t, c.Claim(docID))
	assert.False(t, c.Claim(docID), "second claim on the same document must lose")
	assert.True(t, c.Held(docID))

	c.Release(docID)
	assert.False(t, c.Held(docID))
	assert.True(t, c.Claim(docID), "claim must be available again after release")
}

func TestClaimsReleaseUnclaimed(t *testing.T) {
	c := NewClaims()
	c.Release(uuid.New()) // no-op, must not panic
}

func TestClaimsConcurrentWinners(t *testing.T) {
	c := NewClaims()
	docID := uuid.New()

	const attempts = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Claim(docID) {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won, "exactly one claimer must win")
	assert.True(t, c.Held(docID))
}

func TestClaimsIndependentDocuments(t *testing.T) {
	c := NewClaims()
	a, b := uuid.New(), uuid.New()

	require.True(t, c.Claim(a))
	assert.True(t, c.Claim(b), "claims on distinct documents are independent")
	c.Release(a)
	assert.True(t, c.Held(b))
}
