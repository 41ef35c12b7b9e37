package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PartialCache stores the latest partial (or final-but-unacknowledged) data
// per document while a streaming extraction is in flight, so a viewer that
// navigates away and back sees the most recent data without re-querying.
// Implementations must be safe for concurrent use.
type PartialCache interface {
	SetPartial(ctx context.Context, documentID uuid.UUID, data []byte, ttl time.Duration) error
	GetPartial(ctx context.Context, documentID uuid.UUID) ([]byte, bool, error)
	DeletePartial(ctx context.Context, documentID uuid.UUID) error
	Ping(ctx context.Context) error
}

// PartialKey is the cache key for a document's in-flight extraction data.
func PartialKey(documentID uuid.UUID) string {
	return fmt.Sprintf("partial:%s", documentID)
}
